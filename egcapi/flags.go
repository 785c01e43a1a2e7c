package egcapi

// Flags is the decoded form of the capabilityFlags and featureFlags masks.
// Each bit is independent.
type Flags struct {
	StreamCommand   bool `json:"stream_command"`
	Record          bool `json:"record"`
	Screenshot      bool `json:"screenshot"`
	FlashbackRecord bool `json:"flashback_record"`
	Stream          bool `json:"stream"`
	LiveCommentary  bool `json:"live_commentary"`
}

const (
	flagStreamCommand = 1 << iota
	flagRecord
	flagScreenshot
	flagFlashbackRecord
	flagStream
	flagLiveCommentary
)

// FlagNames lists the flag names in bit order.
var FlagNames = []string{
	"stream_command",
	"record",
	"screenshot",
	"flashback_record",
	"stream",
	"live_commentary",
}

// DecodeFlags projects the low six bits of mask onto a Flags value. Higher
// bits are ignored.
func DecodeFlags(mask int) Flags {
	return Flags{
		StreamCommand:   mask&flagStreamCommand != 0,
		Record:          mask&flagRecord != 0,
		Screenshot:      mask&flagScreenshot != 0,
		FlashbackRecord: mask&flagFlashbackRecord != 0,
		Stream:          mask&flagStream != 0,
		LiveCommentary:  mask&flagLiveCommentary != 0,
	}
}

// Mask packs f back into its bitmask.
func (f Flags) Mask() int {
	mask := 0
	for i, set := range f.values() {
		if set {
			mask |= 1 << i
		}
	}
	return mask
}

// Names returns the names of the set flags in bit order.
func (f Flags) Names() []string {
	var names []string
	for i, set := range f.values() {
		if set {
			names = append(names, FlagNames[i])
		}
	}
	return names
}

// Has reports whether the named flag is set. Unknown names report false.
func (f Flags) Has(name string) bool {
	for i, candidate := range FlagNames {
		if candidate == name {
			return f.values()[i]
		}
	}
	return false
}

func (f Flags) values() [6]bool {
	return [6]bool{
		f.StreamCommand,
		f.Record,
		f.Screenshot,
		f.FlashbackRecord,
		f.Stream,
		f.LiveCommentary,
	}
}
