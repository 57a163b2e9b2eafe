// Package bot — «склейка» вокруг discordgo, resolve и market, реализующая
// прайсчекер для Escape from Tarkov. Бот:
//   - слушает сообщения с префиксом (по умолчанию "!") и разбирает запрос
//     через resolve (псевдонимы, fuzzy, каталог);
//   - при уверенном совпадении отвечает эмбедом с ценами Tarkov-Market;
//   - при нескольких кандидатах открывает уточнение: нумерованный список
//     плюс кнопки, выбор числом или нажатием (одна сессия на пару
//     канал+пользователь, новая заявка вытесняет старую, протухшие убирает
//     тикер);
//   - обрабатывает команды (!help, !alias add/del/list, !reload, !save);
//   - игнорирует сообщения ботов, включая свои;
//   - периодически обновляет каталог и удалённый словарь псевдонимов.
//
// Жизненный цикл:
//   - Создать бота через New(conf).
//   - Передать клиентов: SetDiscord(token), SetMarket(...).
//   - (Опционально) UseConfig("conf/botaliases.json") — операторские
//     псевдонимы поверх встроенного словаря.
//   - Запустить Start() и остановить Stop().
//
// Пример:
//
//	b := bot.New(botcfg)
//	if err := b.SetDiscord(token); err != nil { log.Fatal(err) }
//	b.SetMarket(mcfg)
//	_ = b.UseConfig("conf/botaliases.json")
//
//	if err := b.Start(); err != nil { log.Fatal(err) }
//	defer b.Stop()
//
// Ошибки удалённых сервисов (маркет, каталог, словарь) не фатальны:
// бот деградирует до «не нашли» и продолжает работать.
package bot
