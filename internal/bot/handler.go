package bot

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jagami/tarkovbot/internal/resolve"
)

// reply — ответ бота без привязки к транспорту, чтобы логику можно было
// тестировать без живого gateway.
type reply struct {
	content    string
	embed      *discordgo.MessageEmbed
	components []discordgo.MessageComponent
}

var reNumeric = regexp.MustCompile(`^\d{1,2}$`)

// HandleMessage — входная точка для сообщения чата. Возвращает nil, если
// отвечать нечего (бот, не наш префикс, пустой запрос).
func (bot *TarkovBot) HandleMessage(channelID, authorID, text string, isBot bool) *reply {
	if isBot {
		return nil
	}
	text = strings.TrimSpace(text)
	key := sessionKey{channelID: channelID, userID: authorID}

	// голое число — выбор из открытого уточнения
	if reNumeric.MatchString(text) && bot.sessions.active(key) {
		n, _ := strconv.Atoi(text)
		return bot.HandleSelection(channelID, authorID, n)
	}

	if !strings.HasPrefix(text, bot.conf.Prefix) {
		return nil
	}
	body := strings.TrimSpace(strings.TrimPrefix(text, bot.conf.Prefix))
	if body == "" {
		return nil
	}

	fields := splitArgs(body)
	switch strings.ToLower(fields[0]) {
	case "help", "alias", "reload", "save":
		return bot.handleCommand(fields)
	}

	// любой другой текст — поисковый запрос
	return bot.handleQuery(key, body)
}

// HandleSelection — выбор кандидата номером (числовой ответ или кнопка).
func (bot *TarkovBot) HandleSelection(channelID, authorID string, n int) *reply {
	key := sessionKey{channelID: channelID, userID: authorID}
	name, err := bot.sessions.resolveSelection(key, n)
	switch err {
	case nil:
		return bot.priceReply(name, name)
	case ErrBadChoice:
		return &reply{content: fmt.Sprintf("Pick a number from the list (got %d).", n)}
	default:
		return &reply{content: "No pending search — send a new query first."}
	}
}

func (bot *TarkovBot) handleQuery(key sessionKey, query string) *reply {
	res := bot.resolver.Resolve(query)
	log.Printf("[query] %q -> kind=%d name=%q score=%d", query, res.Kind, res.Name, res.Score)

	switch res.Kind {
	case resolve.Confident:
		bot.sessions.drop(key) // новый запрос вытесняет старое уточнение
		return bot.priceReply(query, res.Name)

	case resolve.Ambiguous:
		bot.sessions.open(key, query, res.Candidates)
		return candidatesReply(query, res.Candidates)

	default:
		bot.sessions.drop(key)
		return &reply{content: fmt.Sprintf("No item matched `%s`. Try another spelling or an English name.", query)}
	}
}

// priceReply тянет цены из Tarkov-Market; отсутствие данных или ошибка
// сети — обычный ответ, не сбой резолва.
func (bot *TarkovBot) priceReply(rawQuery, name string) *reply {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	item, ok, err := bot.market.FetchItem(ctx, name)
	if err != nil {
		log.Println("[market]", err)
		return &reply{content: fmt.Sprintf("Matched **%s**, but price data is unavailable right now.", name)}
	}
	if !ok {
		return &reply{content: fmt.Sprintf("Matched **%s**, but the market has no listing for it.", name)}
	}

	meta, _ := bot.catalog.Meta(name)
	return &reply{embed: bot.buildItemEmbed(rawQuery, name, item, meta)}
}

// candidatesReply — нумерованный список + кнопки выбора.
func candidatesReply(query string, cands []resolve.Candidate) *reply {
	var b strings.Builder
	fmt.Fprintf(&b, "Several items match `%s` — reply with a number or press a button:\n", query)
	for i, c := range cands {
		fmt.Fprintf(&b, "`%d.` %s\n", i+1, c.Name)
	}

	buttons := make([]discordgo.MessageComponent, 0, len(cands))
	for i := range cands {
		buttons = append(buttons, discordgo.Button{
			Label:    strconv.Itoa(i + 1),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("pick:%d", i+1),
		})
	}

	return &reply{
		content:    b.String(),
		components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
	}
}

// ---------- discordgo-обвязка ----------

func (bot *TarkovBot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	r := bot.HandleMessage(m.ChannelID, m.Author.ID, m.Content, m.Author.Bot)
	if r == nil {
		return
	}
	bot.send(m.ChannelID, r)
}

func (bot *TarkovBot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	data := i.MessageComponentData()
	if !strings.HasPrefix(data.CustomID, "pick:") {
		return
	}
	n, err := strconv.Atoi(strings.TrimPrefix(data.CustomID, "pick:"))
	if err != nil {
		return
	}

	userID := ""
	if i.Member != nil && i.Member.User != nil {
		userID = i.Member.User.ID
	} else if i.User != nil {
		userID = i.User.ID
	}

	r := bot.HandleSelection(i.ChannelID, userID, n)
	if r == nil {
		return
	}

	resp := &discordgo.InteractionResponseData{Content: r.content}
	if r.embed != nil {
		resp.Embeds = []*discordgo.MessageEmbed{r.embed}
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: resp,
	}); err != nil {
		log.Println("[bot] interaction:", err)
	}
}

func (bot *TarkovBot) send(channelID string, r *reply) {
	msg := &discordgo.MessageSend{Content: r.content}
	if r.embed != nil {
		msg.Embeds = []*discordgo.MessageEmbed{r.embed}
	}
	if len(r.components) > 0 {
		msg.Components = r.components
	}
	if _, err := bot.dg.ChannelMessageSendComplex(channelID, msg); err != nil {
		log.Println("[bot] send:", err)
	}
}
