package asset

import "strings"

// join stacks lines into one art block
// Lines with backticks use interpreted strings, the rest stay raw
func join(lines ...string) string {
	return strings.Join(lines, "\n")
}

// Curated fish, simplified from the classic terminal aquarium
var fishTexts = []string{
	`<º)))><`,

	`><(((º>`,

	join(
		`   __`,
		`><(o )___`,
		` ( .__> /`,
		"  `----'",
	),

	join(
		`><>`,
		`<__>`,
	),

	join(
		`  __`,
		`q(==)p`,
		`  \/`,
	),

	join(
		`       \`,
		`     ...\..,`,
		`\  /'       \`,
		` >=     (  ' >`,
		`/  \      / /`,
		"    `\"'\"'/''",
	),

	join(
		`      /`,
		`  ,../...`,
		` /       '\  /`,
		`< '  )     =<`,
		` \ \      /  \`,
		"  `'\\'\"'\"'",
	),

	join(
		`    \`,
		`\ /--\`,
		`>=  (o>`,
		`/ \__/`,
		`    /`,
	),

	join(
		`  /`,
		` /--\ /`,
		`<o)  =<`,
		` \__/ \`,
		`  \`,
	),

	join(
		`  __`,
		`\/ o\`,
		`/\__/`,
	),

	join(
		` __`,
		`/o \/`,
		`\__/\`,
	),

	join(
		`  ,\`,
		`>=('>`,
		`  '/`,
	),

	join(
		` /,`,
		`<')=<`,
		" \\`",
	),
}

// Fish returns the curated fish table, measured fresh on every call
func Fish() Table {
	return FromTexts(fishTexts...)
}
