// Package market — клиент Tarkov-Market API. Две операции:
//   - FetchItem: цена и метаданные предмета по каноничному имени
//     (возвращает «не найдено» отдельно от ошибки);
//   - FetchCatalog: выгрузка всего каталога для кэша резолвера
//     (с ETag, на 304 отдаёт прежний снимок).
//
// Разные версии API называют поля по-разному (icon/img,
// avg24hPrice/avgPrice24h, link/wikiLink) — rawItem.normalize сводит их
// к одной схеме, дальше бота эта вариативность не касается.
package market
