package integrations

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/utils"
)

// Kakasi romanizes via the kakasi binary. Keeping the exec plumbing here
// means nothing else in the tree knows or cares how transliteration happens.
type Kakasi struct {
	bin string
}

// NewKakasi locates kakasi on PATH. A missing binary is a normal condition
// on most machines; callers downgrade it to a warning.
func NewKakasi() (*Kakasi, error) {
	bin, err := exec.LookPath("kakasi")
	if err != nil {
		return nil, fmt.Errorf("kakasi not found on PATH: %w", err)
	}
	return &Kakasi{bin: bin}, nil
}

func (k *Kakasi) Romanize(text string) (string, error) {
	cmd := exec.Command(k.bin, "-i", "utf8", "-o", "utf8", "-Ja", "-Ha", "-Ka", "-Ea", "-s")
	cmd.Stdin = strings.NewReader(text)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("kakasi: %w", err)
	}
	romanized := utils.TrimQuotes(string(out))
	// kakasi folds "、" to ","; keep the full-width one so CSV cells stay clean
	return strings.ReplaceAll(romanized, ",", "、"), nil
}
