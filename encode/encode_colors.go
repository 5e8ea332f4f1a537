package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/mcnp-tools/go-mcnp/inp"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[inp.Class]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[inp.Class]func(string, ...any) string{},
	}
	colors.Map[inp.MessageClass] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[inp.TitleClass] = color.New(color.Bold).SprintfFunc()
	colors.Map[inp.KeywordClass] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[inp.NumberClass] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[inp.OperatorClass] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[inp.CommentClass] = color.BlueString
	colors.Map[inp.TrailingClass] = color.RGB(88, 158, 86).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k inp.Class, s string) string {
	return c.Get(k)(s)
}

func (c *Colors) Get(k inp.Class) func(string, ...any) string {
	f := c.Map[k]
	if f == nil {
		return c.Default
	}
	return f
}
