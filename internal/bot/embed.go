package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jagami/tarkovbot/internal/market"
	"github.com/jagami/tarkovbot/internal/resolve"
)

const embedColor = 0x00AAFF

// buildItemEmbed собирает ответ с ценами. Метаданные каталога закрывают
// дыры в ответе маркета (иконка, вики-ссылка).
func (bot *TarkovBot) buildItemEmbed(rawQuery, name string, item *market.Item, meta resolve.Meta) *discordgo.MessageEmbed {
	link := item.Link
	if link == "" {
		link = meta.WikiLink
	}
	icon := item.Icon
	if icon == "" {
		icon = meta.Icon
	}
	shortName := item.ShortName
	if shortName == "" {
		shortName = meta.ShortName
	}

	desc := []string{fmt.Sprintf("🔍 **Search:** `%s`", rawQuery)}
	if shortName != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(shortName)) {
		desc = append(desc, fmt.Sprintf("🧾 **Short name:** `%s`", shortName))
	}

	trader := item.TraderName
	if trader == "" {
		trader = "----"
	}
	priceLines := []string{
		fmt.Sprintf("Flea avg: **%s**", fmtRub(item.Avg24hPrice)),
		fmt.Sprintf("Best trader: **%s (%s)**", trader, fmtRub(item.TraderPrice)),
		fmt.Sprintf("Spread: **%s**", fmtSpread(item.Avg24hPrice, item.TraderPrice)),
	}

	embed := &discordgo.MessageEmbed{
		Title:       name,
		URL:         link,
		Color:       embedColor,
		Description: strings.Join(desc, "\n"),
		Fields: []*discordgo.MessageEmbedField{{
			Name:   "💰 Prices",
			Value:  strings.Join(priceLines, "\n"),
			Inline: false,
		}},
	}
	if icon != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: icon}
	}

	footer := "Prices via Tarkov-Market"
	if bot.conf.TwitchURL != "" {
		footer += " | Twitch: " + bot.conf.TwitchURL
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}

	return embed
}

// fmtRub — «295,000₽»; ноль значит «данных нет».
func fmtRub(v int) string {
	if v <= 0 {
		return "----"
	}
	return groupDigits(v) + "₽"
}

// fmtSpread — разница флипа «флеа минус трейдер», со знаком.
func fmtSpread(flea, trader int) string {
	if flea <= 0 || trader <= 0 {
		return "----"
	}
	d := flea - trader
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	return sign + groupDigits(d) + "₽"
}

// groupDigits — разряды через запятую: 1234567 -> "1,234,567".
func groupDigits(v int) string {
	s := strconv.Itoa(v)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
