package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	tests := map[string]StatusBucket{
		"aprobado":            BucketDone,
		"finalizado":          BucketDone,
		"en_curso":            BucketActive,
		"presupuestado":       BucketActive,
		"esperando_cliente":   BucketWaiting,
		"esperando_organismo": BucketWaiting,
		"en_espera":           BucketWaiting,
		"observado":           BucketBlocked,
		"rechazado":           BucketBlocked,
		"consulta":            BucketOther,
		"archivado":           BucketOther,
		"":                    BucketOther,
		"something-new":       BucketOther,
	}
	for status, want := range tests {
		assert.Equalf(t, want, BucketFor(status), "status %q", status)
	}
}
