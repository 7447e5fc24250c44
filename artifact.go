package iconbake

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var blockOpen = regexp.MustCompile(`^\[([A-Za-z_][A-Za-z0-9_]*)\]\s*=\s*\{$`)

// ParseArtifact reads an icons_data translation unit written by Emitter and
// returns its icon blocks in file order. It understands exactly the layout
// the emitter produces and is meant for verifying generated files.
func ParseArtifact(r io.Reader) ([]EncodedIcon, error) {
	var (
		icons []EncodedIcon
		cur   *EncodedIcon
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			continue
		case cur == nil:
			if m := blockOpen.FindStringSubmatch(text); m != nil {
				icons = append(icons, EncodedIcon{ID: m[1]})
				cur = &icons[len(icons)-1]
			}
		case text == "},":
			cur = nil
		default:
			for _, field := range strings.Split(text, ",") {
				field = strings.TrimSpace(field)
				if field == "" {
					continue
				}
				c, err := ParseCode(field)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				cur.Codes = append(cur.Codes, c)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("iconbake: read artifact: %w", err)
	}
	if cur != nil {
		return nil, fmt.Errorf("iconbake: unterminated block %s", cur.ID)
	}
	return icons, nil
}
