//go:build densead_noassert

package densead

// Precondition checks compiled out. Behavior on violated preconditions is
// unspecified in this configuration.
const assertEnabled = false
