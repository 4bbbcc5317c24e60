package watcher

import "context"

// conversionSlots bounds how many inbox recordings convert at the same time.
type conversionSlots chan struct{}

func newConversionSlots(n int) conversionSlots {
	return make(conversionSlots, n)
}

// take blocks until a slot is free or ctx is done.
func (s conversionSlots) take(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s conversionSlots) free() { <-s }

// busy reports how many conversions currently hold a slot.
func (s conversionSlots) busy() int { return len(s) }
