package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// rgb renders r,g,b (0-255) as the truecolor hex string lipgloss.Color
// expects ("#rrggbb").
func rgb(r, g, b int) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func fgPtr(c lipgloss.Color) *lipgloss.Color { return &c }

// docsTheme is a clean, documentation-focused palette and the default.
func docsTheme() *Theme {
	primary := rgb(100, 180, 255)

	return &Theme{
		Name: "docs",
		Colors: Palette{
			Foreground: rgb(220, 220, 220),
			Background: rgb(30, 30, 30),
			Primary:    primary,
			Secondary:  rgb(150, 150, 150),
			Accent:     rgb(255, 200, 100),
			Muted:      rgb(100, 100, 100),
			Error:      rgb(255, 100, 100),
			Warning:    rgb(255, 200, 100),
			Success:    rgb(100, 255, 150),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary, Border: BorderDouble},
				H2: HeadingStyle{Color: primary, Border: BorderSingle},
				H3: HeadingStyle{Color: rgb(150, 200, 255)},
				H4: HeadingStyle{Color: rgb(150, 200, 255)},
				H5: HeadingStyle{Color: rgb(180, 200, 220)},
				H6: HeadingStyle{Color: rgb(180, 200, 220)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(40, 40, 40), Foreground: rgb(220, 220, 220), ShowLanguageBadge: true},
			BlockQuote: BlockQuoteStyle{Color: rgb(180, 180, 200)},
			List:       ListStyle{MarkerColor: primary},
			Table:      TableStyle{BorderStyle: BorderSingle, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(255, 255, 255)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(200, 200, 255)), Background: fgPtr(rgb(40, 40, 60)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(255, 150, 100)), Background: fgPtr(rgb(50, 50, 50))},
			Link:          LinkStyle{Foreground: primary, Underline: true, ShowURL: URLHover},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(150, 150, 150))},
		},
	}
}

// docsCalloutStyles is the callout palette shared by docs and minimal.
func docsCalloutStyles() CalloutStyles {
	return CalloutStyles{
		Note:      CalloutStyle{Icon: "i", Color: rgb(88, 166, 255), Border: rgb(88, 166, 255)},
		Warning:   CalloutStyle{Icon: "!", Color: rgb(210, 153, 34), Border: rgb(210, 153, 34)},
		Important: CalloutStyle{Icon: "‼", Color: rgb(219, 97, 162), Border: rgb(219, 97, 162)},
		Tip:       CalloutStyle{Icon: "*", Color: rgb(63, 185, 80), Border: rgb(63, 185, 80)},
		Caution:   CalloutStyle{Icon: "x", Color: rgb(248, 81, 73), Border: rgb(248, 81, 73)},
	}
}

func neonTheme() *Theme {
	primary := rgb(255, 0, 200)

	return &Theme{
		Name: "neon",
		Colors: Palette{
			Foreground: rgb(230, 230, 255),
			Background: rgb(10, 10, 20),
			Primary:    primary,
			Secondary:  rgb(0, 255, 220),
			Accent:     rgb(255, 255, 0),
			Muted:      rgb(120, 120, 150),
			Error:      rgb(255, 40, 90),
			Warning:    rgb(255, 210, 0),
			Success:    rgb(0, 255, 140),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary, Border: BorderHeavy},
				H2: HeadingStyle{Color: rgb(0, 255, 220), Border: BorderHeavy},
				H3: HeadingStyle{Color: rgb(255, 255, 0)},
				H4: HeadingStyle{Color: rgb(255, 255, 0)},
				H5: HeadingStyle{Color: rgb(0, 255, 220)},
				H6: HeadingStyle{Color: rgb(0, 255, 220)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(20, 20, 35), Foreground: rgb(0, 255, 220), ShowLanguageBadge: true},
			BlockQuote: BlockQuoteStyle{Color: rgb(255, 0, 200)},
			List:       ListStyle{MarkerColor: rgb(0, 255, 220)},
			Table:      TableStyle{BorderStyle: BorderHeavy, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(255, 255, 255)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(255, 0, 200)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(0, 255, 220)), Background: fgPtr(rgb(25, 25, 40))},
			Link:          LinkStyle{Foreground: rgb(255, 255, 0), Underline: true, ShowURL: URLInline},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(120, 120, 150))},
		},
	}
}

func minimalTheme() *Theme {
	primary := rgb(220, 220, 220)

	return &Theme{
		Name: "minimal",
		Colors: Palette{
			Foreground: rgb(220, 220, 220),
			Background: rgb(0, 0, 0),
			Primary:    primary,
			Secondary:  rgb(160, 160, 160),
			Accent:     rgb(200, 200, 200),
			Muted:      rgb(110, 110, 110),
			Error:      rgb(200, 80, 80),
			Warning:    rgb(200, 170, 80),
			Success:    rgb(120, 200, 120),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary},
				H2: HeadingStyle{Color: primary},
				H3: HeadingStyle{Color: rgb(190, 190, 190)},
				H4: HeadingStyle{Color: rgb(190, 190, 190)},
				H5: HeadingStyle{Color: rgb(160, 160, 160)},
				H6: HeadingStyle{Color: rgb(160, 160, 160)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(20, 20, 20), Foreground: rgb(220, 220, 220)},
			BlockQuote: BlockQuoteStyle{Color: rgb(160, 160, 160)},
			List:       ListStyle{MarkerColor: rgb(200, 200, 200)},
			Table:      TableStyle{BorderStyle: BorderASCII, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(255, 255, 255)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(220, 220, 220)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(200, 200, 200)), Background: fgPtr(rgb(30, 30, 30))},
			Link:          LinkStyle{Foreground: rgb(220, 220, 220), Underline: true, ShowURL: URLHidden},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(110, 110, 110))},
		},
	}
}

func draculaTheme() *Theme {
	primary := rgb(189, 147, 249)

	return &Theme{
		Name: "dracula",
		Colors: Palette{
			Foreground: rgb(248, 248, 242),
			Background: rgb(40, 42, 54),
			Primary:    primary,
			Secondary:  rgb(255, 121, 198),
			Accent:     rgb(139, 233, 253),
			Muted:      rgb(98, 114, 164),
			Error:      rgb(255, 85, 85),
			Warning:    rgb(241, 250, 140),
			Success:    rgb(80, 250, 123),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary, Border: BorderRounded},
				H2: HeadingStyle{Color: rgb(255, 121, 198), Border: BorderSingle},
				H3: HeadingStyle{Color: rgb(139, 233, 253)},
				H4: HeadingStyle{Color: rgb(139, 233, 253)},
				H5: HeadingStyle{Color: rgb(98, 114, 164)},
				H6: HeadingStyle{Color: rgb(98, 114, 164)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(33, 34, 44), Foreground: rgb(80, 250, 123), ShowLanguageBadge: true},
			BlockQuote: BlockQuoteStyle{Color: rgb(98, 114, 164)},
			List:       ListStyle{MarkerColor: rgb(255, 121, 198)},
			Table:      TableStyle{BorderStyle: BorderRounded, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(255, 255, 255)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(241, 250, 140)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(80, 250, 123)), Background: fgPtr(rgb(33, 34, 44))},
			Link:          LinkStyle{Foreground: rgb(139, 233, 253), Underline: true, ShowURL: URLHover},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(98, 114, 164))},
		},
	}
}

func monokaiTheme() *Theme {
	primary := rgb(249, 38, 114)

	return &Theme{
		Name: "monokai",
		Colors: Palette{
			Foreground: rgb(248, 248, 240),
			Background: rgb(39, 40, 34),
			Primary:    primary,
			Secondary:  rgb(166, 226, 46),
			Accent:     rgb(253, 151, 31),
			Muted:      rgb(117, 113, 94),
			Error:      rgb(249, 38, 114),
			Warning:    rgb(230, 219, 116),
			Success:    rgb(166, 226, 46),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary, Border: BorderSingle},
				H2: HeadingStyle{Color: rgb(166, 226, 46), Border: BorderSingle},
				H3: HeadingStyle{Color: rgb(253, 151, 31)},
				H4: HeadingStyle{Color: rgb(253, 151, 31)},
				H5: HeadingStyle{Color: rgb(117, 113, 94)},
				H6: HeadingStyle{Color: rgb(117, 113, 94)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(46, 46, 40), Foreground: rgb(230, 219, 116), ShowLanguageBadge: true},
			BlockQuote: BlockQuoteStyle{Color: rgb(166, 226, 46)},
			List:       ListStyle{MarkerColor: rgb(253, 151, 31)},
			Table:      TableStyle{BorderStyle: BorderSingle, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(255, 255, 255)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(174, 129, 255)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(230, 219, 116)), Background: fgPtr(rgb(46, 46, 40))},
			Link:          LinkStyle{Foreground: rgb(102, 217, 239), Underline: true, ShowURL: URLHover},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(117, 113, 94))},
		},
	}
}

func solarizedTheme() *Theme {
	primary := rgb(38, 139, 210)

	return &Theme{
		Name: "solarized",
		Colors: Palette{
			Foreground: rgb(131, 148, 150),
			Background: rgb(0, 43, 54),
			Primary:    primary,
			Secondary:  rgb(211, 54, 130),
			Accent:     rgb(181, 137, 0),
			Muted:      rgb(88, 110, 117),
			Error:      rgb(220, 50, 47),
			Warning:    rgb(181, 137, 0),
			Success:    rgb(133, 153, 0),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary, Border: BorderSingle},
				H2: HeadingStyle{Color: rgb(42, 161, 152), Border: BorderSingle},
				H3: HeadingStyle{Color: rgb(211, 54, 130)},
				H4: HeadingStyle{Color: rgb(211, 54, 130)},
				H5: HeadingStyle{Color: rgb(88, 110, 117)},
				H6: HeadingStyle{Color: rgb(88, 110, 117)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(7, 54, 66), Foreground: rgb(131, 148, 150), ShowLanguageBadge: true},
			BlockQuote: BlockQuoteStyle{Color: rgb(88, 110, 117)},
			List:       ListStyle{MarkerColor: rgb(42, 161, 152)},
			Table:      TableStyle{BorderStyle: BorderSingle, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(238, 232, 213)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(181, 137, 0)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(133, 153, 0)), Background: fgPtr(rgb(7, 54, 66))},
			Link:          LinkStyle{Foreground: primary, Underline: true, ShowURL: URLHover},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(88, 110, 117))},
		},
	}
}

func gruvboxTheme() *Theme {
	primary := rgb(250, 189, 47)

	return &Theme{
		Name: "gruvbox",
		Colors: Palette{
			Foreground: rgb(235, 219, 178),
			Background: rgb(40, 40, 40),
			Primary:    primary,
			Secondary:  rgb(184, 187, 38),
			Accent:     rgb(254, 128, 25),
			Muted:      rgb(146, 131, 116),
			Error:      rgb(251, 73, 52),
			Warning:    rgb(250, 189, 47),
			Success:    rgb(184, 187, 38),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary, Border: BorderASCII},
				H2: HeadingStyle{Color: rgb(254, 128, 25), Border: BorderASCII},
				H3: HeadingStyle{Color: rgb(184, 187, 38)},
				H4: HeadingStyle{Color: rgb(184, 187, 38)},
				H5: HeadingStyle{Color: rgb(146, 131, 116)},
				H6: HeadingStyle{Color: rgb(146, 131, 116)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(50, 48, 47), Foreground: rgb(235, 219, 178), ShowLanguageBadge: true},
			BlockQuote: BlockQuoteStyle{Color: rgb(146, 131, 116)},
			List:       ListStyle{MarkerColor: rgb(254, 128, 25)},
			Table:      TableStyle{BorderStyle: BorderASCII, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(251, 241, 199)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(250, 189, 47)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(184, 187, 38)), Background: fgPtr(rgb(50, 48, 47))},
			Link:          LinkStyle{Foreground: rgb(131, 165, 152), Underline: true, ShowURL: URLHover},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(146, 131, 116))},
		},
	}
}

func nordTheme() *Theme {
	primary := rgb(136, 192, 208)

	return &Theme{
		Name: "nord",
		Colors: Palette{
			Foreground: rgb(216, 222, 233),
			Background: rgb(46, 52, 64),
			Primary:    primary,
			Secondary:  rgb(180, 142, 173),
			Accent:     rgb(163, 190, 140),
			Muted:      rgb(76, 86, 106),
			Error:      rgb(191, 97, 106),
			Warning:    rgb(235, 203, 139),
			Success:    rgb(163, 190, 140),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary, Border: BorderSingle},
				H2: HeadingStyle{Color: rgb(94, 129, 172), Border: BorderSingle},
				H3: HeadingStyle{Color: rgb(180, 142, 173)},
				H4: HeadingStyle{Color: rgb(180, 142, 173)},
				H5: HeadingStyle{Color: rgb(76, 86, 106)},
				H6: HeadingStyle{Color: rgb(76, 86, 106)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(59, 66, 82), Foreground: rgb(216, 222, 233), ShowLanguageBadge: true},
			BlockQuote: BlockQuoteStyle{Color: rgb(76, 86, 106)},
			List:       ListStyle{MarkerColor: rgb(94, 129, 172)},
			Table:      TableStyle{BorderStyle: BorderRounded, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(236, 239, 244)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(163, 190, 140)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(235, 203, 139)), Background: fgPtr(rgb(59, 66, 82))},
			Link:          LinkStyle{Foreground: primary, Underline: true, ShowURL: URLHover},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(76, 86, 106))},
		},
	}
}

func tokyoNightTheme() *Theme {
	primary := rgb(122, 162, 247)

	return &Theme{
		Name: "tokyo-night",
		Colors: Palette{
			Foreground: rgb(192, 202, 245),
			Background: rgb(26, 27, 38),
			Primary:    primary,
			Secondary:  rgb(187, 154, 247),
			Accent:     rgb(224, 175, 104),
			Muted:      rgb(86, 95, 137),
			Error:      rgb(247, 118, 142),
			Warning:    rgb(224, 175, 104),
			Success:    rgb(158, 206, 106),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary, Border: BorderRounded},
				H2: HeadingStyle{Color: rgb(187, 154, 247), Border: BorderSingle},
				H3: HeadingStyle{Color: rgb(122, 162, 247)},
				H4: HeadingStyle{Color: rgb(122, 162, 247)},
				H5: HeadingStyle{Color: rgb(86, 95, 137)},
				H6: HeadingStyle{Color: rgb(86, 95, 137)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(31, 35, 53), Foreground: rgb(192, 202, 245), ShowLanguageBadge: true},
			BlockQuote: BlockQuoteStyle{Color: rgb(86, 95, 137)},
			List:       ListStyle{MarkerColor: rgb(187, 154, 247)},
			Table:      TableStyle{BorderStyle: BorderRounded, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(255, 255, 255)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(158, 206, 106)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(224, 175, 104)), Background: fgPtr(rgb(31, 35, 53))},
			Link:          LinkStyle{Foreground: primary, Underline: true, ShowURL: URLHover},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(86, 95, 137))},
		},
	}
}

func catppuccinTheme() *Theme {
	primary := rgb(198, 160, 246)

	return &Theme{
		Name: "catppuccin",
		Colors: Palette{
			Foreground: rgb(202, 211, 245),
			Background: rgb(36, 39, 58),
			Primary:    primary,
			Secondary:  rgb(245, 169, 127),
			Accent:     rgb(238, 212, 159),
			Muted:      rgb(110, 115, 141),
			Error:      rgb(237, 135, 150),
			Warning:    rgb(238, 212, 159),
			Success:    rgb(166, 218, 149),
		},
		Spacing: DefaultSpacing(),
		Blocks: BlockStyles{
			Heading: HeadingStyles{
				H1: HeadingStyle{Color: primary, Border: BorderRounded},
				H2: HeadingStyle{Color: rgb(245, 169, 127), Border: BorderRounded},
				H3: HeadingStyle{Color: rgb(166, 218, 149)},
				H4: HeadingStyle{Color: rgb(166, 218, 149)},
				H5: HeadingStyle{Color: rgb(110, 115, 141)},
				H6: HeadingStyle{Color: rgb(110, 115, 141)},
			},
			CodeBlock:  CodeBlockStyle{Background: rgb(30, 32, 48), Foreground: rgb(202, 211, 245), ShowLanguageBadge: true},
			BlockQuote: BlockQuoteStyle{Color: rgb(110, 115, 141)},
			List:       ListStyle{MarkerColor: rgb(245, 169, 127)},
			Table:      TableStyle{BorderStyle: BorderRounded, Padding: 1},
			Callout:    docsCalloutStyles(),
		},
		Inlines: InlineStyles{
			Strong:        TextStyle{Foreground: fgPtr(rgb(255, 255, 255)), Weight: WeightBold},
			Emphasis:      TextStyle{Foreground: fgPtr(rgb(238, 212, 159)), Style: StyleItalic},
			Code:          TextStyle{Foreground: fgPtr(rgb(166, 218, 149)), Background: fgPtr(rgb(30, 32, 48))},
			Link:          LinkStyle{Foreground: primary, Underline: true, ShowURL: URLHover},
			Strikethrough: TextStyle{Foreground: fgPtr(rgb(110, 115, 141))},
		},
	}
}
