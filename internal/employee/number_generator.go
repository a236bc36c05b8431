package employee

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
)

// NumberGenerator produces employee numbers of the form PPP-NNNNN-DDMMMYYYY,
// e.g. RAZ-04821-14MAY1994. The 5-digit part is random and carries no
// uniqueness guarantee; the store's unique index catches collisions.
type NumberGenerator struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

func NewNumberGenerator(rng *rand.Rand) *NumberGenerator {
	return &NumberGenerator{rng: rng}
}

func (g *NumberGenerator) Generate(employeeName string, dateOfBirth time.Time) string {
	g.mu.Lock()
	suffix := g.rng.Intn(100000)
	g.mu.Unlock()

	datePart := strings.ToUpper(dateOfBirth.Format("02Jan2006"))

	return fmt.Sprintf("%s-%05d-%s", namePrefix(employeeName), suffix, datePart)
}

// namePrefix keeps the first three letters of the name, uppercased,
// padded with X when fewer than three letters remain.
func namePrefix(name string) string {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == 3 {
				break
			}
		}
	}

	for len(letters) < 3 {
		letters = append(letters, 'X')
	}

	return string(letters)
}
