package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardanlabs/nicecoin/foundation/logger"
)

func Test_New(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.log")

	log, err := logger.New("NODE", path)
	if err != nil {
		t.Fatalf("Should be able to construct a logger: %s", err)
	}

	log.Infow("startup", "status", "mining")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Should be able to read the log file: %s", err)
	}

	for _, want := range []string{`"service":"NODE"`, `"msg":"startup"`, `"status":"mining"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Should find %s in the log output: %s", want, data)
		}
	}
}
