package texts

import "strings"

// markdownReplacer escapes every character reserved by Telegram MarkdownV2
var markdownReplacer = strings.NewReplacer(
	`\`, `\\`,
	`_`, `\_`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`~`, `\~`,
	"`", "\\`",
	`>`, `\>`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`=`, `\=`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`.`, `\.`,
	`!`, `\!`,
)

// EscapeMarkdown makes s safe to embed in a MarkdownV2 message as plain text
func EscapeMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}

// Bold renders s as bold MarkdownV2 text
func Bold(s string) string {
	return "*" + EscapeMarkdown(s) + "*"
}
