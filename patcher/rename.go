package patcher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/boxesandglue/numderline/font"
)

// fontNameRe splits a PostScript font name into base name and style suffix,
// e.g. "SourceCodePro-Bold" yields ("SourceCodePro", "-Bold").
var fontNameRe = regexp.MustCompile(`^([^-]*)(-.*)?$`)

// rename embeds the variant-set suffix in the font's family, full and
// PostScript names and records the preferred family / compatible full SFNT
// names.
func rename(f *font.Font, suffix string) {
	f.FamilyName += " with " + suffix
	f.FullName += " with " + suffix

	m := fontNameRe.FindStringSubmatch(f.FontName)
	f.FontName = m[1] + "With" + suffix + m[2]

	f.AddLangName(langNameLine(1033, f.FamilyName, f.FullName))
}

// langNameLine builds an SFD LangName record carrying name ID 16 (preferred
// family) and name ID 18 (compatible full) for the given language.
func langNameLine(lang int, preferredFamily, compatibleFull string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "LangName: %d", lang)
	for id := 0; id < 16; id++ {
		b.WriteString(` ""`)
	}
	fmt.Fprintf(&b, " %s", quoteSFD(preferredFamily))
	b.WriteString(` ""`)
	fmt.Fprintf(&b, " %s", quoteSFD(compatibleFull))
	return b.String()
}

func quoteSFD(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
