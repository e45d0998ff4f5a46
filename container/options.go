package container

// Options configures a Writer (Open takes no Options). Struct-literal config, no
// functional-options layer, matching arloliu-mebo's NumericEncoderConfig
// style scaled down to this package's much smaller surface.
type Options struct {
	// BlockSize records the PForDelta block length. Writer does not read
	// it: the pfor package always uses its fixed pfor.BlockSize (128),
	// whatever this field holds.
	BlockSize int

	// CheckpointInterval is how many lists the writer encodes between
	// durable checkpoints (original_source's CHECKPOINT_INTVL, default
	// 1,000,000). Zero disables checkpointing (a single checkpoint is
	// still written at clean shutdown).
	CheckpointInterval int

	// SkipThreshold: lists with length <= SkipThreshold are consumed from
	// the input but not encoded (original_source's SKIP, default 1).
	SkipThreshold uint32

	// MaxListLen: lists with length >= MaxListLen are likewise skipped
	// (original_source's MAXLEN). Also sizes the writer's scratch buffers.
	MaxListLen uint32
}

// DefaultOptions returns the original_source/src/encoders.cpp defaults
// (CHECKPOINT_INTVL and SKIP are given explicit values there; MAXLEN's
// definition wasn't present in the filtered original_source file set, so
// 1<<20 is this package's own choice of "large enough for any real posting
// list, small enough not to force a wasteful scratch-buffer allocation").
func DefaultOptions() Options {
	return Options{
		BlockSize:          128,
		CheckpointInterval: 1_000_000,
		SkipThreshold:      1,
		MaxListLen:         1 << 20,
	}
}
