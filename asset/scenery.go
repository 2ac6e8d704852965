package asset

// Scenery art faces right; renderers mirror it for leftward motion

var (
	Ship = New(join(
		`     |    |    |`,
		`    )_)  )_)  )_)`,
		`   )___))___))___)\`,
		`  )____)____)_____)\\`,
		`_____|____|____|____\\\__`,
		`\                   /`,
	))

	Shark = New(join(
		`          __`,
		`         / \`,
		`,-------'   '-----.__`,
		`>  ==            o   '>`,
		"'-------.____.----'`",
	))

	Whale = New(join(
		`       .-----.`,
		`     .'       '.`,
		`,   /      (o)  \`,
		`\'./            _)`,
		` '-.__________./`,
	))

	Castle = New(join(
		`               T~~`,
		`               |`,
		`              /^\`,
		`             /   \`,
		` _   _   _  /     \  _   _   _`,
		`[ ]_[ ]_[ ]/ _   _ \[ ]_[ ]_[ ]`,
		`|_=__-_ =_|_[ ]_[ ]_|_=-___-__|`,
		` | _- =  | =_ = _    |= _=   |`,
		` |= -[]  |- = _ =    |_-=_[] |`,
		` | =_    |= - ___    | =_ =  |`,
		` |=  []- |-  /| |\   |=_ =[] |`,
		` |- =_   | =| | | |  |- = -  |`,
		` |_______|__|_|_|_|__|_______|`,
	))
)

// WhaleSpoutHead is the column of the blowhole in right-facing whale art
const WhaleSpoutHead = 9

// WhaleSpoutCenter is the column of the spout stem within each frame
const WhaleSpoutCenter = 3

// WhaleSpout frames cycle above the blowhole, each three rows tall
var WhaleSpout = FromTexts(
	join(``, ``, `   :`),
	join(``, `   :`, `   :`),
	join(`  . .`, `  -:-`, `   :`),
	join(`  . .`, ` .-:-.`, `   :`),
	join(`  . .`, `'.-:-.'`, `'  :  '`),
	join(``, ` .- -.`, `;  :  ;`),
	join(``, ``, `;     ;`),
)

// Waterlines are the four repeating surface patterns, top to bottom
var Waterlines = []string{
	`~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~`,
	`^^^^ ^^^  ^^^   ^^^    ^^^^      ^^^^ ^^^  ^^^   ^^^    ^^^^      `,
	`^^^^      ^^^^     ^^^    ^^     ^^^^      ^^^^     ^^^    ^^     `,
	`^^      ^^^^      ^^^    ^^^^^^  ^^      ^^^^      ^^^    ^^^^^^  `,
}
