// Package resolve — движок разбора названий предметов: превращает
// свободный (возможно, с опечатками или на японском) ввод пользователя
// в каноничное имя предмета Tarkov.
//
// Составные части:
//   - Normalize — нормализация строки в ключ сравнения;
//   - AliasStore — словарь псевдонимов (встроенный + рантайм-добавления +
//     перезагрузка из удалённого JSON-документа целиком);
//   - Catalog — кэш каноничных имён и метаданных из удалённого каталога;
//   - Resolver — объединяет точный поиск, fuzzy и подстроку, см. Resolve.
//
// Все операции синхронные и in-memory; сторы безопасны для конкурентного
// чтения, перезагрузка подменяет таблицу целиком. Результат Resolve
// детерминирован при неизменных сторах.
//
// Пример:
//
//	aliases := resolve.DefaultAliasStore()
//	catalog := resolve.NewCatalog()
//	catalog.Replace(items) // из internal/market
//
//	r := resolve.NewResolver(aliases, catalog, resolve.DefaultConfig())
//	res := r.Resolve("グラボ")
//	switch res.Kind {
//	case resolve.Confident:
//	    fmt.Println(res.Name, res.Score)
//	case resolve.Ambiguous:
//	    for i, c := range res.Candidates { fmt.Println(i+1, c.Name) }
//	case resolve.NotFound:
//	    fmt.Println("не нашли")
//	}
package resolve
