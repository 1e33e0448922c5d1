package cli

import "context"

// Unlocker is the biometric capability boundary: a single call answering
// whether the user passed the device's local authentication. Hardware
// enrollment, availability checks, and prompts all live behind it.
type Unlocker interface {
	Unlock(ctx context.Context) (bool, error)
}

// AlwaysUnlock is the fallback for environments without a biometric
// capability; every reveal succeeds.
type AlwaysUnlock struct{}

func (AlwaysUnlock) Unlock(ctx context.Context) (bool, error) { return true, nil }
