package charref_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jacoelho/charref"
)

func TestEncodeDecodeConcurrent(t *testing.T) {
	const goroutines = 8
	const iterations = 200

	errCh := make(chan error, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				in := fmt.Sprintf("<%d & %d> café 😀 \"%d\"", i, j, i*j)
				level := charref.Level(j % 4)
				enc := charref.Encode(in, charref.EncodeOptions{Mode: charref.ModeNonASCII, Level: level, Numeric: charref.Numeric(i % 2)})
				if got := charref.Decode(enc, charref.DecodeOptions{Level: level}); got != in {
					errCh <- fmt.Errorf("round trip %q: got %q via %q", in, got, enc)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Fatalf("concurrent round trip error: %v", err)
	}
}
