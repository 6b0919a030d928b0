package cli

import (
	"cmp"
	"flag"
	"fmt"
	"slices"
	"strings"
)

const usageWidth = 80

func usageOf(c *Command) string {
	if c.UsageFunc != nil {
		return c.UsageFunc(c)
	}
	return DefaultUsage(c)
}

// DefaultUsage renders the help text for a command: its short help, usage pattern, subcommands and
// the flags visible to it, split into local and global (inherited) flags.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}
	var b strings.Builder

	if c.ShortHelp != "" {
		for _, line := range wrapText(c.ShortHelp, usageWidth) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Usage:\n")
	if c.Usage != "" {
		b.WriteString("  " + c.Usage + "\n")
	} else {
		usage := c.path()
		if c.Flags != nil {
			usage += " [flags]"
		}
		if len(c.SubCommands) > 0 {
			usage += " <command>"
		}
		b.WriteString("  " + usage + "\n")
	}
	b.WriteString("\n")

	if len(c.SubCommands) > 0 {
		b.WriteString("Available Commands:\n")
		sorted := slices.Clone(c.SubCommands)
		slices.SortFunc(sorted, func(x, y *Command) int {
			return cmp.Compare(x.Name, y.Name)
		})
		var names, descriptions []string
		for _, sub := range sorted {
			names = append(names, sub.Name)
			descriptions = append(descriptions, sub.ShortHelp)
		}
		writeColumns(&b, names, descriptions)
		b.WriteString("\n")
	}

	var local, global []flagInfo
	if c.state != nil {
		last := len(c.state.commandPath) - 1
		for i, cmd := range c.state.commandPath {
			if cmd.Flags == nil {
				continue
			}
			cmd.Flags.VisitAll(func(f *flag.Flag) {
				info := flagInfo{name: "-" + f.Name, usage: f.Usage, defval: f.DefValue}
				if i < last {
					global = append(global, info)
				} else {
					local = append(local, info)
				}
			})
		}
	}
	if len(local) > 0 {
		b.WriteString("Flags:\n")
		writeFlagSection(&b, local)
		b.WriteString("\n")
	}
	if len(global) > 0 {
		b.WriteString("Global Flags:\n")
		writeFlagSection(&b, global)
		b.WriteString("\n")
	}

	if len(c.SubCommands) > 0 {
		fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n", c.path())
	}
	return strings.TrimRight(b.String(), "\n")
}

type flagInfo struct {
	name   string
	usage  string
	defval string
}

func writeFlagSection(b *strings.Builder, flags []flagInfo) {
	slices.SortFunc(flags, func(x, y flagInfo) int {
		return cmp.Compare(x.name, y.name)
	})
	var names, descriptions []string
	for _, f := range flags {
		description := f.usage
		if f.defval != "" && f.defval != "false" {
			description += fmt.Sprintf(" (default %s)", f.defval)
		}
		names = append(names, f.name)
		descriptions = append(descriptions, description)
	}
	writeColumns(b, names, descriptions)
}

// writeColumns writes name/description pairs with the descriptions aligned and wrapped to
// usageWidth.
func writeColumns(b *strings.Builder, names, descriptions []string) {
	maxLen := 0
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}
	nameWidth := maxLen + 4
	indent := strings.Repeat(" ", nameWidth+2)
	for i, name := range names {
		lines := wrapText(descriptions[i], usageWidth-nameWidth)
		if len(lines) == 0 {
			fmt.Fprintf(b, "  %s\n", name)
			continue
		}
		padding := strings.Repeat(" ", nameWidth-len(name))
		fmt.Fprintf(b, "  %s%s%s\n", name, padding, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indent, line)
		}
	}
}

// wrapText splits text into lines no longer than width, breaking on whitespace. A word longer than
// width gets a line of its own.
func wrapText(text string, width int) []string {
	var (
		lines   []string
		current strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
