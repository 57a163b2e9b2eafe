package bot

import (
	"fmt"
	"regexp"
	"strings"
)

// сплит с поддержкой кавычек: !alias add "red key" "Factory emergency exit key"
var reArg = regexp.MustCompile(`"([^"]*)"|(\S+)`)

func (bot *TarkovBot) handleCommand(fields []string) *reply {
	cmd := strings.ToLower(fields[0])

	switch cmd {

	case "help":
		return &reply{content: strings.Join([]string{
			"**Usage:** `" + bot.conf.Prefix + "<item name>` — price check",
			"Examples: `" + bot.conf.Prefix + "ledx`, `" + bot.conf.Prefix + "グラボ`, `" + bot.conf.Prefix + "graphic card`",
			"When several items match, reply with a number or press a button.",
			"",
			"`" + bot.conf.Prefix + "alias add <alias> <name>` — map an alias (quotes for spaces)",
			"`" + bot.conf.Prefix + "alias del <alias>`",
			"`" + bot.conf.Prefix + "alias list`",
			"`" + bot.conf.Prefix + "reload` — refetch catalog and alias document",
			"`" + bot.conf.Prefix + "save` — persist operator aliases",
		}, "\n")}

	// ---------- ALIAS ----------
	case "alias":
		if len(fields) < 2 {
			return &reply{content: "usage: alias add|del|list"}
		}
		sub := strings.ToLower(fields[1])

		switch sub {
		case "list":
			if bot.cfg == nil || len(bot.cfg.data.Aliases) == 0 {
				return &reply{content: "operator aliases: (empty)"}
			}
			var rows []string
			bot.cfg.mu.Lock()
			for _, a := range bot.cfg.data.Aliases {
				rows = append(rows, fmt.Sprintf("%s -> %s", a.Alias, a.Name))
			}
			bot.cfg.mu.Unlock()
			return &reply{content: "operator aliases:\n" + strings.Join(rows, "\n")}

		case "add":
			if len(fields) < 4 {
				return &reply{content: "usage: alias add <alias> <name>"}
			}
			alias, name := fields[2], strings.Join(fields[3:], " ")
			bot.aliases.Add(alias, name)
			if bot.cfg != nil {
				bot.cfg.mu.Lock()
				bot.cfg.data.Aliases = append(bot.cfg.data.Aliases, AliasConf{Alias: alias, Name: name})
				bot.cfg.mu.Unlock()
				_ = bot.cfg.Save()
			}
			return &reply{content: fmt.Sprintf("alias added: %s -> %s", alias, name)}

		case "del":
			if len(fields) < 3 {
				return &reply{content: "usage: alias del <alias>"}
			}
			alias := fields[2]
			bot.aliases.Remove(alias)
			if bot.cfg != nil {
				bot.cfg.mu.Lock()
				out := make([]AliasConf, 0, len(bot.cfg.data.Aliases))
				for _, a := range bot.cfg.data.Aliases {
					if a.Alias != alias {
						out = append(out, a)
					}
				}
				bot.cfg.data.Aliases = out
				bot.cfg.mu.Unlock()
				_ = bot.cfg.Save()
			}
			return &reply{content: fmt.Sprintf("alias deleted: %s", alias)}

		default:
			return &reply{content: "usage: alias add|del|list"}
		}

	// ---------- RELOAD ----------
	case "reload":
		bot.refreshSources()
		return &reply{content: fmt.Sprintf("reloaded: catalog %d names, dictionary %d keys",
			bot.catalog.Len(), bot.aliases.Len())}

	// ---------- SAVE ----------
	case "save":
		if bot.cfg != nil {
			if err := bot.cfg.Save(); err != nil {
				return &reply{content: fmt.Sprintf("save failed: %v", err)}
			}
			return &reply{content: "config saved"}
		}
		return &reply{content: "config not enabled"}

	default:
		return &reply{content: "unknown command. try " + bot.conf.Prefix + "help"}
	}
}

func splitArgs(s string) []string {
	var out []string
	for _, m := range reArg.FindAllStringSubmatch(s, -1) {
		if m[1] != "" {
			out = append(out, m[1])
		} else {
			out = append(out, m[2])
		}
	}
	return out
}
