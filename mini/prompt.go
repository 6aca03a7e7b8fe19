package mini

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/icon"
	"github.com/moodbuster/moodbuster/style"
	"github.com/moodbuster/moodbuster/util"
	"github.com/samber/lo"
)

// bind is a menu action shown above the items.
type bind struct {
	key         string
	description string
}

func (b *bind) String() string {
	return fmt.Sprintf("[%s] %s", b.key, b.description)
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

var (
	next       = &bind{"n", "next"}
	prev       = &bind{"p", "previous"}
	openLink   = &bind{"o", "open link"}
	save       = &bind{"s", "save"}
	changeMood = &bind{"m", "change mood"}
	startOver  = &bind{"b", "start over"}
	retry      = &bind{"r", "retry"}
	saved      = &bind{"H", "saved picks"}
	remove     = &bind{"d", "remove"}
	back       = &bind{"esc", "back"}
	quit       = &bind{"q", "quit"}
)

const pageSize = 12

// menu asks for one of binds or items. Exactly one of the results is set.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	options := lo.Map(binds, func(b *bind, _ int) string { return style.Faint(b.String()) })
	options = append(options, lo.Map(items, func(item T, i int) string {
		return fmt.Sprintf("%d. %s", i+1, truncate(item.String()))
	})...)

	var chosen int
	err := survey.AskOne(&survey.Select{
		Message:  "Select",
		Options:  options,
		PageSize: pageSize,
	}, &chosen)
	if err != nil {
		return nil, zero, err
	}

	if chosen < len(binds) {
		return binds[chosen], zero, nil
	}

	return nil, items[chosen-len(binds)], nil
}

func title(t string) {
	fmt.Println(style.Bold(style.Fg(color.HiPurple)(t)))
}

func fail(t string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(t))
}

func success(t string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Success), style.Fg(color.Green)(t))
}

func progress(t string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), t))
}

func truncate(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if truncateAt <= 3 || len([]rune(s)) <= truncateAt {
		return s
	}
	return string([]rune(s)[:truncateAt-3]) + "..."
}
