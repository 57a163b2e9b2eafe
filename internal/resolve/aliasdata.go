package resolve

// Встроенный словарь псевдонимов: английские сокращения, японские названия
// и кана-варианты -> официальное английское имя предмета. Один псевдоним
// может указывать на несколько предметов (ключ-карты, ключи общежития) —
// такие запросы уходят в уточнение, а не в «угадывание».
var defaultAliases = []AliasEntry{
	// --- дорогой лут ---
	{"ledx", "LEDX Skin Transilluminator"},
	{"ledx skin transilluminator", "LEDX Skin Transilluminator"},
	{"レドックス", "LEDX Skin Transilluminator"},
	{"レドエックス", "LEDX Skin Transilluminator"},
	{"れどっくす", "LEDX Skin Transilluminator"},
	{"光るやつ", "LEDX Skin Transilluminator"},

	{"gpu", "Graphics card"},
	{"graphics", "Graphics card"},
	{"グラボ", "Graphics card"},
	{"ぐらぼ", "Graphics card"},
	{"グラフィックボード", "Graphics card"},

	{"btc", "Physical Bitcoin"},
	{"bitcoin", "Physical Bitcoin"},
	{"0.2btc", "Physical Bitcoin"},
	{"ビットコイン", "Physical Bitcoin"},
	{"びっとこいん", "Physical Bitcoin"},
	{"ビッコ", "Physical Bitcoin"},

	{"gp", "GP coin"},
	{"gp coin", "GP coin"},
	{"gpコイン", "GP coin"},
	{"金コイン", "GP coin"},

	{"roler", "Roler Submariner gold wrist watch"},
	{"ローラー", "Roler Submariner gold wrist watch"},
	{"金時計", "Roler Submariner gold wrist watch"},

	{"prokill", "Chain with Prokill medallion"},
	{"プロキル", "Chain with Prokill medallion"},
	{"gold chain", "Golden neck chain"},
	{"goldchain", "Golden neck chain"},
	{"金チェーン", "Golden neck chain"},
	{"金ネックレス", "Golden neck chain"},

	{"red rebel", "Red Rebel ice pick"},
	{"レッドレベル", "Red Rebel ice pick"},
	{"レッレベ", "Red Rebel ice pick"},
	{"アイスピッケル", "Red Rebel ice pick"},

	// --- медицина ---
	{"salewa", "Salewa first aid kit"},
	{"サレワ", "Salewa first aid kit"},
	{"されわ", "Salewa first aid kit"},
	{"grizzly", "Grizzly medical kit"},
	{"グリズリー", "Grizzly medical kit"},
	{"ぐりずりー", "Grizzly medical kit"},
	{"ifak", "IFAK individual first aid kit"},
	{"アイファク", "IFAK individual first aid kit"},
	{"cms", "CMS surgical kit"},
	{"手術キット", "CMS surgical kit"},
	{"surv12", "Surv12 field surgical kit"},
	{"サーブ12", "Surv12 field surgical kit"},
	{"gas analyzer", "Gas analyzer"},
	{"gasan", "Gas analyzer"},
	{"ガスアナ", "Gas analyzer"},
	{"ガスアナライザー", "Gas analyzer"},
	{"vitamins", "Bottle of OLOLO Multivitamins"},
	{"マルチビタミン", "Bottle of OLOLO Multivitamins"},
	{"h2o2", "Bottle of hydrogen peroxide"},
	{"過酸化水素水", "Bottle of hydrogen peroxide"},
	{"nacl", "Bottle of saline solution"},
	{"生理食塩水", "Bottle of saline solution"},
	{"syringe", "Disposable syringe"},
	{"使い捨て注射器", "Disposable syringe"},

	// --- контейнеры ---
	{"item case", "Item case"},
	{"アイテムケース", "Item case"},
	{"アイケ", "Item case"},
	{"weapon case", "Weapon case"},
	{"武器ケース", "Weapon case"},
	{"thicc item case", "T H I C C Item case"},
	{"シックケース", "T H I C C Item case"},
	{"thicc weapon case", "T H I C C Weapon case"},
	{"シック武器ケース", "T H I C C Weapon case"},
	{"keytool", "Keytool"},
	{"キーケース", "Keytool"},
	{"キー工具", "Keytool"},

	// --- крафт и материалы ---
	{"aramid", "Aramid fiber fabric"},
	{"アラミド", "Aramid fiber fabric"},
	{"cordura", "Cordura polyamide fabric"},
	{"コーデュラ", "Cordura polyamide fabric"},
	{"fleece", "Fleece fabric"},
	{"フリース", "Fleece fabric"},
	{"ripstop", "Ripstop fabric"},
	{"リップストップ", "Ripstop fabric"},
	{"パラコード", "Paracord"},
	{"fp100", "FP-100 filter absorber"},
	{"water filter", "Water filter"},
	{"ウォーターフィルター", "Water filter"},
	{"motor", "Electric motor"},
	{"モーター", "Electric motor"},
	{"fuel conditioner", "Fuel conditioner"},
	{"燃料コンディショナー", "Fuel conditioner"},
	{"car battery", "Car battery"},
	{"車バッテリー", "Car battery"},
	{"flash drive", "Secure Flash drive"},
	{"フラッシュドライブ", "Secure Flash drive"},
	{"フラドリ", "Secure Flash drive"},

	// --- ключи и карты; часть псевдонимов сознательно неоднозначна ---
	{"factory key", "Factory emergency exit key"},
	{"工場キー", "Factory emergency exit key"},
	{"赤鍵", "Factory emergency exit key"},
	{"206", "Dorm room 206 key"},
	{"206 key", "Dorm room 206 key"},
	{"214", "Dorm room 214 key"},
	{"214 key", "Dorm room 214 key"},
	{"dorm key", "Dorm room 206 key"},
	{"dorm key", "Dorm room 214 key"},
	{"寮キー", "Dorm room 206 key"},
	{"寮キー", "Dorm room 214 key"},
	{"labs keycard", "TerraGroup Labs keycard (Red)"},
	{"labs keycard", "TerraGroup Labs keycard (Blue)"},
	{"labs keycard", "TerraGroup Labs keycard (Green)"},
	{"labs keycard", "TerraGroup Labs keycard (Violet)"},
	{"labs keycard", "TerraGroup Labs keycard (Black)"},
	{"カードキー", "TerraGroup Labs keycard (Red)"},
	{"カードキー", "TerraGroup Labs keycard (Blue)"},
	{"カードキー", "TerraGroup Labs keycard (Green)"},
	{"カードキー", "TerraGroup Labs keycard (Violet)"},
	{"カードキー", "TerraGroup Labs keycard (Black)"},
	{"red keycard", "TerraGroup Labs keycard (Red)"},
	{"赤カード", "TerraGroup Labs keycard (Red)"},
	{"青カード", "TerraGroup Labs keycard (Blue)"},

	// --- оружие ---
	{"ak74", "Kalashnikov AK-74 5.45x39 assault rifle"},
	{"ak74n", "Kalashnikov AK-74N 5.45x39 assault rifle"},
	{"ak74m", "Kalashnikov AK-74M 5.45x39 assault rifle"},
	{"エーケー74", "Kalashnikov AK-74 5.45x39 assault rifle"},
	{"ak103", "Kalashnikov AK-103 7.62x39 assault rifle"},
	{"103", "Kalashnikov AK-103 7.62x39 assault rifle"},
	{"m4", "Colt M4A1 5.56x45 assault rifle"},
	{"m4a1", "Colt M4A1 5.56x45 assault rifle"},
	{"エムフォー", "Colt M4A1 5.56x45 assault rifle"},
	{"hk416", "HK 416A5 5.56x45 assault rifle"},
	{"416", "HK 416A5 5.56x45 assault rifle"},
	{"416a5", "HK 416A5 5.56x45 assault rifle"},
	{"mk18", "SWORD International Mk-18 .338 LM marksman rifle"},
	{"ミョルニル", "SWORD International Mk-18 .338 LM marksman rifle"},
	{"sr25", "Knight's Armament Company SR-25 7.62x51 marksman rifle"},
	{"mp5", "HK MP5 9x19 submachine gun"},
	{"mp7", "HK MP7A1 4.6x30 submachine gun"},
	{"mp7a1", "HK MP7A1 4.6x30 submachine gun"},
	{"g17", "Glock 17 9x19 pistol"},
	{"glock17", "Glock 17 9x19 pistol"},

	// --- патроны ---
	{"bp545", "5.45x39mm BP gs"},
	{"545bp", "5.45x39mm BP gs"},
	{"bt545", "5.45x39mm BT gs"},
	{"545bt", "5.45x39mm BT gs"},
	{"bp762", "7.62x39mm BP gzh"},
	{"762bp", "7.62x39mm BP gzh"},
	{"m855", "5.56x45mm M855"},
	{"855", "5.56x45mm M855"},
	{"m995", "5.56x45mm M995"},
	{"995", "5.56x45mm M995"},
	{"m80", "7.62x51mm M80"},
	{"m61", "7.62x51mm M61"},
}
