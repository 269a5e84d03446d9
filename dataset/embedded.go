package dataset

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed data/formula1.json
var snapshot []byte

var (
	embeddedOnce sync.Once
	embedded     *Dataset
)

// Embedded returns the snapshot compiled into the binary. A broken snapshot
// is a build defect, so it panics instead of returning an error.
func Embedded() *Dataset {
	embeddedOnce.Do(func() {
		ds, err := Decode(bytes.NewReader(snapshot))
		if err != nil {
			panic("dataset: embedded snapshot: " + err.Error())
		}
		embedded = ds
	})
	return embedded
}
