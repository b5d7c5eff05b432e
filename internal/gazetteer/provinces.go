package gazetteer

// Turkish geographic regions, in the ASCII form used across results.
const (
	RegionMarmara          = "Marmara"
	RegionEge              = "Ege"
	RegionAkdeniz          = "Akdeniz"
	RegionIcAnadolu        = "Ic Anadolu"
	RegionKaradeniz        = "Karadeniz"
	RegionDoguAnadolu      = "Dogu Anadolu"
	RegionGuneydoguAnadolu = "Guneydogu Anadolu"
)

// Province is one of Turkey's 81 administrative provinces. Code is the
// vehicle plate number (1..81). Name is the ASCII folded form; it is the
// published vocabulary consumers match against, so it never changes
// without coordinating with them. Aliases hold normalized alternates
// (historical and colloquial names) beyond the name itself.
type Province struct {
	Code    int
	Name    string
	Region  string
	Aliases []string
}

// provinceTable lists all 81 provinces in plate-code order.
var provinceTable = []Province{
	{Code: 1, Name: "Adana", Region: RegionAkdeniz},
	{Code: 2, Name: "Adiyaman", Region: RegionGuneydoguAnadolu},
	{Code: 3, Name: "Afyonkarahisar", Region: RegionEge, Aliases: []string{"afyon"}},
	{Code: 4, Name: "Agri", Region: RegionDoguAnadolu},
	{Code: 5, Name: "Amasya", Region: RegionKaradeniz},
	{Code: 6, Name: "Ankara", Region: RegionIcAnadolu},
	{Code: 7, Name: "Antalya", Region: RegionAkdeniz},
	{Code: 8, Name: "Artvin", Region: RegionKaradeniz},
	{Code: 9, Name: "Aydin", Region: RegionEge},
	{Code: 10, Name: "Balikesir", Region: RegionMarmara},
	{Code: 11, Name: "Bilecik", Region: RegionMarmara},
	{Code: 12, Name: "Bingol", Region: RegionDoguAnadolu},
	{Code: 13, Name: "Bitlis", Region: RegionDoguAnadolu},
	{Code: 14, Name: "Bolu", Region: RegionKaradeniz},
	{Code: 15, Name: "Burdur", Region: RegionAkdeniz},
	{Code: 16, Name: "Bursa", Region: RegionMarmara},
	{Code: 17, Name: "Canakkale", Region: RegionMarmara},
	{Code: 18, Name: "Cankiri", Region: RegionIcAnadolu},
	{Code: 19, Name: "Corum", Region: RegionKaradeniz},
	{Code: 20, Name: "Denizli", Region: RegionEge},
	{Code: 21, Name: "Diyarbakir", Region: RegionGuneydoguAnadolu},
	{Code: 22, Name: "Edirne", Region: RegionMarmara},
	{Code: 23, Name: "Elazig", Region: RegionDoguAnadolu},
	{Code: 24, Name: "Erzincan", Region: RegionDoguAnadolu},
	{Code: 25, Name: "Erzurum", Region: RegionDoguAnadolu},
	{Code: 26, Name: "Eskisehir", Region: RegionIcAnadolu},
	{Code: 27, Name: "Gaziantep", Region: RegionGuneydoguAnadolu, Aliases: []string{"antep"}},
	{Code: 28, Name: "Giresun", Region: RegionKaradeniz},
	{Code: 29, Name: "Gumushane", Region: RegionKaradeniz},
	{Code: 30, Name: "Hakkari", Region: RegionDoguAnadolu},
	{Code: 31, Name: "Hatay", Region: RegionAkdeniz},
	{Code: 32, Name: "Isparta", Region: RegionAkdeniz},
	{Code: 33, Name: "Mersin", Region: RegionAkdeniz, Aliases: []string{"icel"}},
	{Code: 34, Name: "Istanbul", Region: RegionMarmara, Aliases: []string{"ist"}},
	{Code: 35, Name: "Izmir", Region: RegionEge},
	{Code: 36, Name: "Kars", Region: RegionDoguAnadolu},
	{Code: 37, Name: "Kastamonu", Region: RegionKaradeniz},
	{Code: 38, Name: "Kayseri", Region: RegionIcAnadolu},
	{Code: 39, Name: "Kirklareli", Region: RegionMarmara},
	{Code: 40, Name: "Kirsehir", Region: RegionIcAnadolu},
	{Code: 41, Name: "Kocaeli", Region: RegionMarmara},
	{Code: 42, Name: "Konya", Region: RegionIcAnadolu},
	{Code: 43, Name: "Kutahya", Region: RegionEge},
	{Code: 44, Name: "Malatya", Region: RegionDoguAnadolu},
	{Code: 45, Name: "Manisa", Region: RegionEge},
	{Code: 46, Name: "Kahramanmaras", Region: RegionAkdeniz, Aliases: []string{"maras", "kmaras"}},
	{Code: 47, Name: "Mardin", Region: RegionGuneydoguAnadolu},
	{Code: 48, Name: "Mugla", Region: RegionEge},
	{Code: 49, Name: "Mus", Region: RegionDoguAnadolu},
	{Code: 50, Name: "Nevsehir", Region: RegionIcAnadolu},
	{Code: 51, Name: "Nigde", Region: RegionIcAnadolu},
	{Code: 52, Name: "Ordu", Region: RegionKaradeniz},
	{Code: 53, Name: "Rize", Region: RegionKaradeniz},
	{Code: 54, Name: "Sakarya", Region: RegionMarmara},
	{Code: 55, Name: "Samsun", Region: RegionKaradeniz},
	{Code: 56, Name: "Siirt", Region: RegionGuneydoguAnadolu},
	{Code: 57, Name: "Sinop", Region: RegionKaradeniz},
	{Code: 58, Name: "Sivas", Region: RegionIcAnadolu},
	{Code: 59, Name: "Tekirdag", Region: RegionMarmara},
	{Code: 60, Name: "Tokat", Region: RegionKaradeniz},
	{Code: 61, Name: "Trabzon", Region: RegionKaradeniz},
	{Code: 62, Name: "Tunceli", Region: RegionDoguAnadolu},
	{Code: 63, Name: "Sanliurfa", Region: RegionGuneydoguAnadolu, Aliases: []string{"urfa"}},
	{Code: 64, Name: "Usak", Region: RegionEge},
	{Code: 65, Name: "Van", Region: RegionDoguAnadolu},
	{Code: 66, Name: "Yozgat", Region: RegionIcAnadolu},
	{Code: 67, Name: "Zonguldak", Region: RegionKaradeniz},
	{Code: 68, Name: "Aksaray", Region: RegionIcAnadolu},
	{Code: 69, Name: "Bayburt", Region: RegionKaradeniz},
	{Code: 70, Name: "Karaman", Region: RegionIcAnadolu},
	{Code: 71, Name: "Kirikkale", Region: RegionIcAnadolu},
	{Code: 72, Name: "Batman", Region: RegionGuneydoguAnadolu},
	{Code: 73, Name: "Sirnak", Region: RegionGuneydoguAnadolu},
	{Code: 74, Name: "Bartin", Region: RegionKaradeniz},
	{Code: 75, Name: "Ardahan", Region: RegionDoguAnadolu},
	{Code: 76, Name: "Igdir", Region: RegionDoguAnadolu},
	{Code: 77, Name: "Yalova", Region: RegionMarmara},
	{Code: 78, Name: "Karabuk", Region: RegionKaradeniz},
	{Code: 79, Name: "Kilis", Region: RegionGuneydoguAnadolu},
	{Code: 80, Name: "Osmaniye", Region: RegionAkdeniz},
	{Code: 81, Name: "Duzce", Region: RegionKaradeniz},
}
