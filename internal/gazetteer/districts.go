package gazetteer

// District is a sub-province unit. District names are NOT unique across
// provinces; the same normalized name can appear several times in this
// arena with different parent provinces (Eregli, Kemer, Saray, ...). The
// lookup index keeps every candidate, never a single winner.
type District struct {
	Name           string
	NormalizedName string
	ProvinceCode   int
	IsLogisticsHub bool
}

// districtTable is the district arena, grouped by parent province in
// plate-code order. NormalizedName is filled in at build time.
var districtTable = []District{
	// Adana (1)
	{Name: "Ceyhan", ProvinceCode: 1, IsLogisticsHub: true},
	{Name: "Kozan", ProvinceCode: 1},
	{Name: "Pozanti", ProvinceCode: 1},
	{Name: "Saricam", ProvinceCode: 1},
	{Name: "Seyhan", ProvinceCode: 1},
	{Name: "Yuregir", ProvinceCode: 1},
	{Name: "Cukurova", ProvinceCode: 1},
	{Name: "Imamoglu", ProvinceCode: 1},

	// Adiyaman (2)
	{Name: "Besni", ProvinceCode: 2},
	{Name: "Golbasi", ProvinceCode: 2},
	{Name: "Kahta", ProvinceCode: 2},

	// Afyonkarahisar (3)
	{Name: "Bolvadin", ProvinceCode: 3},
	{Name: "Dinar", ProvinceCode: 3},
	{Name: "Emirdag", ProvinceCode: 3},
	{Name: "Sandikli", ProvinceCode: 3},

	// Amasya (5)
	{Name: "Merzifon", ProvinceCode: 5, IsLogisticsHub: true},
	{Name: "Suluova", ProvinceCode: 5},

	// Ankara (6)
	{Name: "Sincan", ProvinceCode: 6, IsLogisticsHub: true},
	{Name: "Kahramankazan", ProvinceCode: 6},
	{Name: "Polatli", ProvinceCode: 6},
	{Name: "Golbasi", ProvinceCode: 6},
	{Name: "Cubuk", ProvinceCode: 6},
	{Name: "Akyurt", ProvinceCode: 6},
	{Name: "Etimesgut", ProvinceCode: 6},
	{Name: "Yenimahalle", ProvinceCode: 6},
	{Name: "Mamak", ProvinceCode: 6},
	{Name: "Altindag", ProvinceCode: 6},
	{Name: "Kecioren", ProvinceCode: 6},
	{Name: "Cankaya", ProvinceCode: 6},
	{Name: "Beypazari", ProvinceCode: 6},
	{Name: "Sereflikochisar", ProvinceCode: 6},

	// Antalya (7)
	{Name: "Alanya", ProvinceCode: 7},
	{Name: "Manavgat", ProvinceCode: 7},
	{Name: "Serik", ProvinceCode: 7},
	{Name: "Kemer", ProvinceCode: 7},
	{Name: "Kumluca", ProvinceCode: 7},
	{Name: "Finike", ProvinceCode: 7},
	{Name: "Korkuteli", ProvinceCode: 7},
	{Name: "Elmali", ProvinceCode: 7},
	{Name: "Gazipasa", ProvinceCode: 7},
	{Name: "Aksu", ProvinceCode: 7},
	{Name: "Kepez", ProvinceCode: 7},
	{Name: "Muratpasa", ProvinceCode: 7},
	{Name: "Konyaalti", ProvinceCode: 7},

	// Aydin (9)
	{Name: "Nazilli", ProvinceCode: 9},
	{Name: "Soke", ProvinceCode: 9, IsLogisticsHub: true},
	{Name: "Kusadasi", ProvinceCode: 9},
	{Name: "Didim", ProvinceCode: 9},
	{Name: "Germencik", ProvinceCode: 9},
	{Name: "Incirliova", ProvinceCode: 9},
	{Name: "Cine", ProvinceCode: 9},
	{Name: "Efeler", ProvinceCode: 9},

	// Balikesir (10)
	{Name: "Bandirma", ProvinceCode: 10, IsLogisticsHub: true},
	{Name: "Edremit", ProvinceCode: 10},
	{Name: "Ayvalik", ProvinceCode: 10},
	{Name: "Gonen", ProvinceCode: 10},
	{Name: "Burhaniye", ProvinceCode: 10},
	{Name: "Susurluk", ProvinceCode: 10},
	{Name: "Bigadic", ProvinceCode: 10},
	{Name: "Dursunbey", ProvinceCode: 10},
	{Name: "Altieylul", ProvinceCode: 10},
	{Name: "Karesi", ProvinceCode: 10},

	// Bilecik (11)
	{Name: "Bozuyuk", ProvinceCode: 11, IsLogisticsHub: true},

	// Bolu (14)
	{Name: "Gerede", ProvinceCode: 14, IsLogisticsHub: true},
	{Name: "Mengen", ProvinceCode: 14},

	// Burdur (15)
	{Name: "Bucak", ProvinceCode: 15},
	{Name: "Kemer", ProvinceCode: 15},

	// Bursa (16)
	{Name: "Inegol", ProvinceCode: 16, IsLogisticsHub: true},
	{Name: "Gemlik", ProvinceCode: 16, IsLogisticsHub: true},
	{Name: "Mudanya", ProvinceCode: 16},
	{Name: "Karacabey", ProvinceCode: 16},
	{Name: "Mustafakemalpasa", ProvinceCode: 16},
	{Name: "Orhangazi", ProvinceCode: 16},
	{Name: "Yenisehir", ProvinceCode: 16},
	{Name: "Nilufer", ProvinceCode: 16},
	{Name: "Osmangazi", ProvinceCode: 16},
	{Name: "Yildirim", ProvinceCode: 16},
	{Name: "Kestel", ProvinceCode: 16},
	{Name: "Gursu", ProvinceCode: 16},

	// Canakkale (17)
	{Name: "Biga", ProvinceCode: 17},
	{Name: "Can", ProvinceCode: 17},
	{Name: "Gelibolu", ProvinceCode: 17},
	{Name: "Ezine", ProvinceCode: 17},
	{Name: "Yenice", ProvinceCode: 17},
	{Name: "Lapseki", ProvinceCode: 17},

	// Corum (19)
	{Name: "Sungurlu", ProvinceCode: 19},
	{Name: "Osmancik", ProvinceCode: 19},
	{Name: "Ortakoy", ProvinceCode: 19},

	// Denizli (20)
	{Name: "Civril", ProvinceCode: 20},
	{Name: "Acipayam", ProvinceCode: 20},
	{Name: "Tavas", ProvinceCode: 20},
	{Name: "Honaz", ProvinceCode: 20, IsLogisticsHub: true},
	{Name: "Saraykoy", ProvinceCode: 20},
	{Name: "Merkezefendi", ProvinceCode: 20},
	{Name: "Pamukkale", ProvinceCode: 20},
	{Name: "Kale", ProvinceCode: 20},

	// Diyarbakir (21)
	{Name: "Bismil", ProvinceCode: 21},
	{Name: "Ergani", ProvinceCode: 21},
	{Name: "Silvan", ProvinceCode: 21},
	{Name: "Baglar", ProvinceCode: 21},
	{Name: "Kayapinar", ProvinceCode: 21},
	{Name: "Yenisehir", ProvinceCode: 21},
	{Name: "Sur", ProvinceCode: 21},

	// Edirne (22)
	{Name: "Kesan", ProvinceCode: 22, IsLogisticsHub: true},
	{Name: "Uzunkopru", ProvinceCode: 22},
	{Name: "Ipsala", ProvinceCode: 22, IsLogisticsHub: true},

	// Erzurum (25)
	{Name: "Horasan", ProvinceCode: 25},
	{Name: "Oltu", ProvinceCode: 25},
	{Name: "Pasinler", ProvinceCode: 25},
	{Name: "Askale", ProvinceCode: 25},
	{Name: "Yakutiye", ProvinceCode: 25},
	{Name: "Palandoken", ProvinceCode: 25},

	// Eskisehir (26)
	{Name: "Sivrihisar", ProvinceCode: 26},
	{Name: "Cifteler", ProvinceCode: 26},
	{Name: "Tepebasi", ProvinceCode: 26},
	{Name: "Odunpazari", ProvinceCode: 26},

	// Gaziantep (27)
	{Name: "Nizip", ProvinceCode: 27, IsLogisticsHub: true},
	{Name: "Islahiye", ProvinceCode: 27},
	{Name: "Sahinbey", ProvinceCode: 27},
	{Name: "Sehitkamil", ProvinceCode: 27},
	{Name: "Oguzeli", ProvinceCode: 27},

	// Giresun (28)
	{Name: "Bulancak", ProvinceCode: 28},
	{Name: "Espiye", ProvinceCode: 28},
	{Name: "Tirebolu", ProvinceCode: 28},
	{Name: "Gorele", ProvinceCode: 28},

	// Hatay (31)
	{Name: "Iskenderun", ProvinceCode: 31, IsLogisticsHub: true},
	{Name: "Dortyol", ProvinceCode: 31},
	{Name: "Kirikhan", ProvinceCode: 31},
	{Name: "Reyhanli", ProvinceCode: 31},
	{Name: "Samandag", ProvinceCode: 31},
	{Name: "Antakya", ProvinceCode: 31},
	{Name: "Payas", ProvinceCode: 31, IsLogisticsHub: true},
	{Name: "Erzin", ProvinceCode: 31},
	{Name: "Arsuz", ProvinceCode: 31},
	{Name: "Belen", ProvinceCode: 31},

	// Isparta (32)
	{Name: "Yalvac", ProvinceCode: 32},
	{Name: "Egirdir", ProvinceCode: 32},
	{Name: "Aksu", ProvinceCode: 32},

	// Mersin (33)
	{Name: "Tarsus", ProvinceCode: 33, IsLogisticsHub: true},
	{Name: "Erdemli", ProvinceCode: 33},
	{Name: "Silifke", ProvinceCode: 33},
	{Name: "Anamur", ProvinceCode: 33},
	{Name: "Mut", ProvinceCode: 33},
	{Name: "Toroslar", ProvinceCode: 33},
	{Name: "Akdeniz", ProvinceCode: 33},
	{Name: "Yenisehir", ProvinceCode: 33},
	{Name: "Mezitli", ProvinceCode: 33},

	// Istanbul (34)
	{Name: "Tuzla", ProvinceCode: 34, IsLogisticsHub: true},
	{Name: "Pendik", ProvinceCode: 34, IsLogisticsHub: true},
	{Name: "Kartal", ProvinceCode: 34},
	{Name: "Maltepe", ProvinceCode: 34},
	{Name: "Umraniye", ProvinceCode: 34},
	{Name: "Esenyurt", ProvinceCode: 34, IsLogisticsHub: true},
	{Name: "Avcilar", ProvinceCode: 34},
	{Name: "Basaksehir", ProvinceCode: 34},
	{Name: "Arnavutkoy", ProvinceCode: 34, IsLogisticsHub: true},
	{Name: "Beylikduzu", ProvinceCode: 34},
	{Name: "Buyukcekmece", ProvinceCode: 34},
	{Name: "Kucukcekmece", ProvinceCode: 34},
	{Name: "Catalca", ProvinceCode: 34},
	{Name: "Sile", ProvinceCode: 34},
	{Name: "Sancaktepe", ProvinceCode: 34},
	{Name: "Sultanbeyli", ProvinceCode: 34},
	{Name: "Bagcilar", ProvinceCode: 34},
	{Name: "Gungoren", ProvinceCode: 34},
	{Name: "Zeytinburnu", ProvinceCode: 34},
	{Name: "Silivri", ProvinceCode: 34, IsLogisticsHub: true},

	// Izmir (35)
	{Name: "Aliaga", ProvinceCode: 35, IsLogisticsHub: true},
	{Name: "Kemalpasa", ProvinceCode: 35, IsLogisticsHub: true},
	{Name: "Torbali", ProvinceCode: 35, IsLogisticsHub: true},
	{Name: "Menemen", ProvinceCode: 35},
	{Name: "Bornova", ProvinceCode: 35},
	{Name: "Gaziemir", ProvinceCode: 35},
	{Name: "Cigli", ProvinceCode: 35},
	{Name: "Bergama", ProvinceCode: 35},
	{Name: "Odemis", ProvinceCode: 35},
	{Name: "Tire", ProvinceCode: 35},
	{Name: "Karsiyaka", ProvinceCode: 35},
	{Name: "Konak", ProvinceCode: 35},
	{Name: "Buca", ProvinceCode: 35},
	{Name: "Menderes", ProvinceCode: 35},
	{Name: "Urla", ProvinceCode: 35},
	{Name: "Cesme", ProvinceCode: 35},
	{Name: "Foca", ProvinceCode: 35},
	{Name: "Kinik", ProvinceCode: 35},

	// Kastamonu (37)
	{Name: "Tosya", ProvinceCode: 37},
	{Name: "Taskopru", ProvinceCode: 37},
	{Name: "Pinarbasi", ProvinceCode: 37},

	// Kayseri (38)
	{Name: "Kocasinan", ProvinceCode: 38},
	{Name: "Melikgazi", ProvinceCode: 38},
	{Name: "Develi", ProvinceCode: 38},
	{Name: "Yahyali", ProvinceCode: 38},
	{Name: "Pinarbasi", ProvinceCode: 38},
	{Name: "Talas", ProvinceCode: 38},
	{Name: "Incesu", ProvinceCode: 38},

	// Kirklareli (39)
	{Name: "Luleburgaz", ProvinceCode: 39, IsLogisticsHub: true},
	{Name: "Babaeski", ProvinceCode: 39},
	{Name: "Vize", ProvinceCode: 39},
	{Name: "Pinarhisar", ProvinceCode: 39},

	// Kocaeli (41)
	{Name: "Gebze", ProvinceCode: 41, IsLogisticsHub: true},
	{Name: "Darica", ProvinceCode: 41},
	{Name: "Cayirova", ProvinceCode: 41, IsLogisticsHub: true},
	{Name: "Dilovasi", ProvinceCode: 41, IsLogisticsHub: true},
	{Name: "Korfez", ProvinceCode: 41, IsLogisticsHub: true},
	{Name: "Derince", ProvinceCode: 41, IsLogisticsHub: true},
	{Name: "Izmit", ProvinceCode: 41, IsLogisticsHub: true},
	{Name: "Golcuk", ProvinceCode: 41},
	{Name: "Karamursel", ProvinceCode: 41},
	{Name: "Kandira", ProvinceCode: 41},
	{Name: "Basiskele", ProvinceCode: 41},
	{Name: "Kartepe", ProvinceCode: 41},

	// Konya (42)
	{Name: "Eregli", ProvinceCode: 42},
	{Name: "Aksehir", ProvinceCode: 42},
	{Name: "Beysehir", ProvinceCode: 42},
	{Name: "Cumra", ProvinceCode: 42},
	{Name: "Karapinar", ProvinceCode: 42},
	{Name: "Kulu", ProvinceCode: 42},
	{Name: "Cihanbeyli", ProvinceCode: 42},
	{Name: "Seydisehir", ProvinceCode: 42},
	{Name: "Ilgin", ProvinceCode: 42},
	{Name: "Selcuklu", ProvinceCode: 42},
	{Name: "Meram", ProvinceCode: 42},
	{Name: "Karatay", ProvinceCode: 42},

	// Kutahya (43)
	{Name: "Tavsanli", ProvinceCode: 43},
	{Name: "Simav", ProvinceCode: 43},
	{Name: "Gediz", ProvinceCode: 43},

	// Malatya (44)
	{Name: "Battalgazi", ProvinceCode: 44},
	{Name: "Yesilyurt", ProvinceCode: 44},
	{Name: "Dogansehir", ProvinceCode: 44},
	{Name: "Akcadag", ProvinceCode: 44},
	{Name: "Kale", ProvinceCode: 44},

	// Manisa (45)
	{Name: "Akhisar", ProvinceCode: 45},
	{Name: "Turgutlu", ProvinceCode: 45, IsLogisticsHub: true},
	{Name: "Salihli", ProvinceCode: 45},
	{Name: "Soma", ProvinceCode: 45},
	{Name: "Alasehir", ProvinceCode: 45},
	{Name: "Saruhanli", ProvinceCode: 45},
	{Name: "Sehzadeler", ProvinceCode: 45},
	{Name: "Yunusemre", ProvinceCode: 45},

	// Kahramanmaras (46)
	{Name: "Elbistan", ProvinceCode: 46},
	{Name: "Afsin", ProvinceCode: 46},
	{Name: "Pazarcik", ProvinceCode: 46},
	{Name: "Turkoglu", ProvinceCode: 46, IsLogisticsHub: true},
	{Name: "Dulkadiroglu", ProvinceCode: 46},
	{Name: "Onikisubat", ProvinceCode: 46},

	// Mardin (47)
	{Name: "Kiziltepe", ProvinceCode: 47, IsLogisticsHub: true},
	{Name: "Nusaybin", ProvinceCode: 47},
	{Name: "Midyat", ProvinceCode: 47},
	{Name: "Artuklu", ProvinceCode: 47},

	// Mugla (48)
	{Name: "Fethiye", ProvinceCode: 48},
	{Name: "Bodrum", ProvinceCode: 48},
	{Name: "Marmaris", ProvinceCode: 48},
	{Name: "Milas", ProvinceCode: 48},
	{Name: "Dalaman", ProvinceCode: 48},
	{Name: "Ortaca", ProvinceCode: 48},
	{Name: "Datca", ProvinceCode: 48},
	{Name: "Koycegiz", ProvinceCode: 48},
	{Name: "Seydikemer", ProvinceCode: 48},
	{Name: "Mentese", ProvinceCode: 48},

	// Nigde (51)
	{Name: "Bor", ProvinceCode: 51},

	// Ordu (52)
	{Name: "Unye", ProvinceCode: 52, IsLogisticsHub: true},
	{Name: "Fatsa", ProvinceCode: 52},
	{Name: "Altinordu", ProvinceCode: 52},
	{Name: "Persembe", ProvinceCode: 52},

	// Rize (53)
	{Name: "Pazar", ProvinceCode: 53},
	{Name: "Ardesen", ProvinceCode: 53},
	{Name: "Cayeli", ProvinceCode: 53},
	{Name: "Findikli", ProvinceCode: 53},

	// Sakarya (54)
	{Name: "Adapazari", ProvinceCode: 54, IsLogisticsHub: true},
	{Name: "Akyazi", ProvinceCode: 54},
	{Name: "Hendek", ProvinceCode: 54, IsLogisticsHub: true},
	{Name: "Karasu", ProvinceCode: 54},
	{Name: "Sapanca", ProvinceCode: 54},
	{Name: "Geyve", ProvinceCode: 54},
	{Name: "Arifiye", ProvinceCode: 54, IsLogisticsHub: true},
	{Name: "Erenler", ProvinceCode: 54},
	{Name: "Serdivan", ProvinceCode: 54},

	// Samsun (55)
	{Name: "Bafra", ProvinceCode: 55},
	{Name: "Carsamba", ProvinceCode: 55},
	{Name: "Terme", ProvinceCode: 55},
	{Name: "Havza", ProvinceCode: 55},
	{Name: "Vezirkopru", ProvinceCode: 55},
	{Name: "Tekkekoy", ProvinceCode: 55, IsLogisticsHub: true},
	{Name: "Atakum", ProvinceCode: 55},
	{Name: "Ilkadim", ProvinceCode: 55},

	// Sivas (58)
	{Name: "Sarkisla", ProvinceCode: 58},
	{Name: "Susehri", ProvinceCode: 58},

	// Tekirdag (59)
	{Name: "Corlu", ProvinceCode: 59, IsLogisticsHub: true},
	{Name: "Cerkezkoy", ProvinceCode: 59, IsLogisticsHub: true},
	{Name: "Ergene", ProvinceCode: 59, IsLogisticsHub: true},
	{Name: "Kapakli", ProvinceCode: 59},
	{Name: "Malkara", ProvinceCode: 59},
	{Name: "Hayrabolu", ProvinceCode: 59},
	{Name: "Sarkoy", ProvinceCode: 59},
	{Name: "Saray", ProvinceCode: 59},
	{Name: "Suleymanpasa", ProvinceCode: 59},
	{Name: "Muratli", ProvinceCode: 59},
	{Name: "Marmaraereglisi", ProvinceCode: 59},

	// Tokat (60)
	{Name: "Erbaa", ProvinceCode: 60},
	{Name: "Niksar", ProvinceCode: 60},
	{Name: "Turhal", ProvinceCode: 60},
	{Name: "Zile", ProvinceCode: 60},
	{Name: "Pazar", ProvinceCode: 60},
	{Name: "Yesilyurt", ProvinceCode: 60},
	{Name: "Resadiye", ProvinceCode: 60},

	// Trabzon (61)
	{Name: "Akcaabat", ProvinceCode: 61},
	{Name: "Of", ProvinceCode: 61},
	{Name: "Arakli", ProvinceCode: 61},
	{Name: "Vakfikebir", ProvinceCode: 61},
	{Name: "Arsin", ProvinceCode: 61, IsLogisticsHub: true},
	{Name: "Ortahisar", ProvinceCode: 61},

	// Sanliurfa (63)
	{Name: "Siverek", ProvinceCode: 63},
	{Name: "Viransehir", ProvinceCode: 63},
	{Name: "Akcakale", ProvinceCode: 63},
	{Name: "Birecik", ProvinceCode: 63},
	{Name: "Suruc", ProvinceCode: 63},
	{Name: "Haliliye", ProvinceCode: 63},
	{Name: "Eyyubiye", ProvinceCode: 63},
	{Name: "Karakopru", ProvinceCode: 63},

	// Van (65)
	{Name: "Ercis", ProvinceCode: 65},
	{Name: "Edremit", ProvinceCode: 65},
	{Name: "Saray", ProvinceCode: 65},
	{Name: "Tusba", ProvinceCode: 65},
	{Name: "Ipekyolu", ProvinceCode: 65},

	// Zonguldak (67)
	{Name: "Eregli", ProvinceCode: 67, IsLogisticsHub: true},
	{Name: "Caycuma", ProvinceCode: 67},
	{Name: "Devrek", ProvinceCode: 67},
	{Name: "Alapli", ProvinceCode: 67},

	// Aksaray (68)
	{Name: "Ortakoy", ProvinceCode: 68},
	{Name: "Eskil", ProvinceCode: 68},

	// Karabuk (78)
	{Name: "Safranbolu", ProvinceCode: 78},
	{Name: "Yenice", ProvinceCode: 78},
	{Name: "Eskipazar", ProvinceCode: 78},

	// Osmaniye (80)
	{Name: "Kadirli", ProvinceCode: 80},
	{Name: "Duzici", ProvinceCode: 80},
	{Name: "Toprakkale", ProvinceCode: 80, IsLogisticsHub: true},

	// Duzce (81)
	{Name: "Akcakoca", ProvinceCode: 81},
	{Name: "Kaynasli", ProvinceCode: 81},
}
