package lifecycle

// StatusBucket groups statuses for charts and progress bars. It is presentation
// only and never drives a transition.
type StatusBucket string

const (
	BucketDone    StatusBucket = "done"
	BucketActive  StatusBucket = "active"
	BucketWaiting StatusBucket = "waiting"
	BucketBlocked StatusBucket = "blocked"
	BucketOther   StatusBucket = "other"
)

var statusBuckets = map[string]StatusBucket{
	"aprobado":            BucketDone,
	"finalizado":          BucketDone,
	"en_curso":            BucketActive,
	"presupuestado":       BucketActive,
	"esperando_cliente":   BucketWaiting,
	"esperando_organismo": BucketWaiting,
	"en_espera":           BucketWaiting,
	"observado":           BucketBlocked,
	"rechazado":           BucketBlocked,
}

// BucketFor maps any case or procedure status to its bucket. Unknown values
// land in BucketOther.
func BucketFor(status string) StatusBucket {
	if b, ok := statusBuckets[status]; ok {
		return b
	}
	return BucketOther
}
