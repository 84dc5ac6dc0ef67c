package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/kristjanb/petition/models"
)

var firstNames = []string{
	"Anna", "Jón", "Guðrún", "Sigurður", "Kristín", "Gunnar",
	"Helga", "Ólafur", "Sigríður", "Einar", "Margrét", "Magnús",
	"Ingibjörg", "Stefán", "Jóhanna", "Árni", "Elín", "Björn",
	"Katrín", "Kristján", "Ragnheiður", "Páll", "Hildur", "Þór",
}

var lastNameStems = []string{
	"Jóns", "Sigurðar", "Guðmunds", "Gunnars", "Ólafs", "Einars",
	"Magnús", "Kristjáns", "Stefáns", "Björns", "Árna", "Páls",
}

var commentPhrases = []string{
	"Áfram með málið!",
	"Löngu tímabært.",
	"Ég styð þetta heilshugar.",
	"Vonandi hlustar einhver núna.",
	"Betra seint en aldrei.",
	"Þetta skiptir okkur öll máli.",
	"Takk fyrir framtakið.",
	"Skrifa undir fyrir börnin mín.",
}

// twoWeeks bounds the synthetic signing window.
const twoWeeks = 14 * 24 * time.Hour

// NewRNG creates a seeded random number generator. A zero seed falls
// back to the current time so repeated runs differ.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate produces n synthetic signatures with distinct national IDs
// and signing times spread over the past two weeks. Roughly half carry
// a comment and the anonymous flag, mirroring real submissions enough
// for layout work.
func Generate(rng *rand.Rand, n int) []models.Signature {
	now := time.Now()
	used := make(map[string]bool, n)
	signatures := make([]models.Signature, 0, n)

	for len(signatures) < n {
		nationalID := randomNationalID(rng)
		if used[nationalID] {
			continue
		}
		used[nationalID] = true

		sig := models.Signature{
			Name:       randomName(rng),
			NationalID: nationalID,
			Signed:     now.Add(-time.Duration(rng.Int63n(int64(twoWeeks)))),
		}

		if rng.Intn(2) == 0 {
			sig.Comment = commentPhrases[rng.Intn(len(commentPhrases))]
			sig.Anonymous = true
		}

		signatures = append(signatures, sig)
	}

	return signatures
}

func randomName(rng *rand.Rand) string {
	first := firstNames[rng.Intn(len(firstNames))]
	stem := lastNameStems[rng.Intn(len(lastNameStems))]

	suffix := "son"
	if rng.Intn(2) == 0 {
		suffix = "dóttir"
	}

	return first + " " + stem + suffix
}

func randomNationalID(rng *rand.Rand) string {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "%d", rng.Intn(10))
	}
	return b.String()
}
