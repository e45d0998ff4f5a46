package container

import "errors"

var (
	// ErrHeaderInvalid is returned when a TOC file's magic/version doesn't
	// match, or the file is too short to hold a header. On a write-side
	// resume attempt this demotes to a fresh start rather than failing.
	ErrHeaderInvalid = errors.New("container: invalid or missing header")

	// ErrBufferTooSmall is returned when a pre-sized scratch buffer cannot
	// hold a list; indicates Options.MaxListLen is misconfigured relative
	// to the actual input.
	ErrBufferTooSmall = errors.New("container: scratch buffer too small")

	// ErrTruncatedInput is returned when the input file's final record is
	// cut off mid-list.
	ErrTruncatedInput = errors.New("container: truncated input record")

	// ErrShortResumeFile names the case where a resume target's cmp or TOC
	// file is shorter than the header claims. Writer does not return it: its
	// resume check treats that case like ErrHeaderInvalid and starts fresh.
	ErrShortResumeFile = errors.New("container: resume target file shorter than header claims")
)
