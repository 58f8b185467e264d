package parser

import "regexp"

// Resource blocks in kubernetes configs look like this:
//
//	requests:
//	  cpu: "100m"
//	  memory: "128M"
//	limits:
//	  memory: "512M"
//	  cpu: "500m"
//
// Each pattern below matches one section keyword with its two fields in one
// fixed order. CPU values are always quoted; quotes around memory values are
// optional. \s* tolerates any run of whitespace, newlines included, so
// indentation depth never matters. All four patterns are applied
// independently and every non-overlapping occurrence contributes.
var (
	reqCPUMem = regexp.MustCompile(`requests:\s*cpu:\s*"(.*)"\s*memory:\s*"?([^"\n]*)"?`)
	reqMemCPU = regexp.MustCompile(`requests:\s*memory:\s*"?([^"\n]*)"?\s*cpu:\s*"(.*)"`)
	limCPUMem = regexp.MustCompile(`limits:\s*cpu:\s*"(.*)"\s*memory:\s*"?([^"\n]*)"?`)
	limMemCPU = regexp.MustCompile(`limits:\s*memory:\s*"?([^"\n]*)"?\s*cpu:\s*"(.*)"`)
)

// Resource quantity syntax, e.g. 500m or 512Mi or 512M: a leading digit run
// followed by an arbitrary unit suffix.
var numericPrefix = regexp.MustCompile(`^[0-9]+`)
