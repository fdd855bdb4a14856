package sorted

const (
	// defaultBatchSize specifies max amount of elements copied into a single batch by Spliterator.TrySplit.
	defaultBatchSize = 1024

	// defaultReservedNodes specifies initial size of the node arena.
	defaultReservedNodes = 16

	// hashMultiplier is the prime used to combine element hashes.
	hashMultiplier = 31
)
