package executor

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/harrison/kubesum/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures scan events for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	files   []string
	skipped []string
}

func (l *recordingLogger) LogFileTotals(path string, totals models.ResourceTotals) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files = append(l.files, path)
}

func (l *recordingLogger) LogSkippedFile(path string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.skipped = append(l.skipped, path)
}

func writeFixtures(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()

	docs := map[string]string{
		"app.yaml": `resources:
  requests:
    cpu: "250m"
    memory: 64M
  limits:
    cpu: "500m"
    memory: 128M
`,
		"worker.yaml": `resources:
  requests:
    memory: "32M"
    cpu: "750m"
`,
		"configmap.yaml": "apiVersion: v1\nkind: ConfigMap\n",
	}

	paths := make([]string, 0, len(docs))
	for name, content := range docs {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		paths = append(paths, path)
	}
	return paths
}

func TestScannerScan(t *testing.T) {
	files := writeFixtures(t)
	log := &recordingLogger{}

	scanner := NewScanner(log, 1)
	totals, filesRead, err := scanner.Scan(context.Background(), files)

	require.NoError(t, err)
	assert.Equal(t, 3, filesRead)
	assert.Equal(t, uint64(96), totals.MemoryRequested)
	assert.Equal(t, uint64(128), totals.MemoryLimit)
	assert.Equal(t, 1.0, totals.CPURequested)
	assert.Equal(t, 0.5, totals.CPULimit)
	assert.Len(t, log.files, 3)
	assert.Empty(t, log.skipped)
}

func TestScannerParallelMatchesSerial(t *testing.T) {
	files := writeFixtures(t)

	serial := NewScanner(nil, 1)
	parallel := NewScanner(nil, 4)

	serialTotals, serialRead, err := serial.Scan(context.Background(), files)
	require.NoError(t, err)

	parallelTotals, parallelRead, err := parallel.Scan(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, serialTotals, parallelTotals)
	assert.Equal(t, serialRead, parallelRead)
}

func TestScannerSkipsUnreadableFiles(t *testing.T) {
	files := writeFixtures(t)
	missing := filepath.Join(t.TempDir(), "deleted.yaml")
	log := &recordingLogger{}

	scanner := NewScanner(log, 1)
	totals, filesRead, err := scanner.Scan(context.Background(), append(files, missing))

	require.NoError(t, err)
	assert.Equal(t, 3, filesRead)
	assert.Equal(t, uint64(96), totals.MemoryRequested)
	assert.Equal(t, []string{missing}, log.skipped)
}

func TestScannerEmptyFileList(t *testing.T) {
	scanner := NewScanner(nil, 4)

	totals, filesRead, err := scanner.Scan(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, filesRead)
	assert.Equal(t, models.ResourceTotals{}, totals)
}

func TestScannerCancelledContext(t *testing.T) {
	files := writeFixtures(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := NewScanner(nil, 1)
	_, _, err := scanner.Scan(ctx, files)

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
