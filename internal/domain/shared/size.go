package shared

type Size string

const (
	SizeTiny       Size = "tiny"
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeHuge       Size = "huge"
	SizeGargantuan Size = "gargantuan"
)

var Sizes = []Size{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan}

// IsValid reports whether s is one of the six creature sizes.
func (s Size) IsValid() bool {
	for _, known := range Sizes {
		if s == known {
			return true
		}
	}
	return false
}
