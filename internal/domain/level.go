package domain

// Level is the education level a ticket sheet is issued for. The
// single-letter code is the first component of every printed ticket code.
type Level string

const (
	LevelKindergarten Level = "K"
	LevelPrimary      Level = "P"
	LevelMiddle       Level = "M"
	LevelHigh         Level = "H"
	LevelAdult        Level = "A"
)

var Levels = []Level{
	LevelKindergarten,
	LevelPrimary,
	LevelMiddle,
	LevelHigh,
	LevelAdult,
}

func (l Level) IsValid() bool {
	for _, level := range Levels {
		if l == level {
			return true
		}
	}

	return false
}

// PackSize is the number of tickets printed on one sheet.
type PackSize int

const (
	PackSizeSmall  PackSize = 12
	PackSizeMedium PackSize = 24
	PackSizeLarge  PackSize = 48
)

var PackSizes = []PackSize{
	PackSizeSmall,
	PackSizeMedium,
	PackSizeLarge,
}

func (p PackSize) IsValid() bool {
	for _, size := range PackSizes {
		if p == size {
			return true
		}
	}

	return false
}
