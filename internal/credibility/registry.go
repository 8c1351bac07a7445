package credibility

// registryEntry is one known domain in the tier registry.
type registryEntry struct {
	Tier  int
	Score float64
	Name  string
}

// tierRegistry maps a bare domain to its reputation tier. Longer (more
// specific) suffixes win over shorter parent domains when both match.
//
// Tier 1 (0.85-1.0)  wire services, peer-reviewed journals, official bodies
// Tier 2 (0.65-0.84) major newspapers, established fact-checkers
// Tier 3 (0.40-0.64) reference and secondary sources
// Tier 4 (0.15-0.39) unknown/generic domains (default)
// Tier 0 (0.00-0.14) known disinfo networks and satire sites
var tierRegistry = map[string]registryEntry{
	// Tier 1: wire services and primary news agencies
	"reuters.com": {1, 0.97, "Reuters"},
	"apnews.com":  {1, 0.97, "Associated Press"},
	"afp.com":     {1, 0.95, "AFP"},
	"bbc.com":     {1, 0.93, "BBC"},
	"bbc.co.uk":   {1, 0.93, "BBC"},

	// Tier 1: peer-reviewed / academic
	"nature.com":              {1, 0.98, "Nature"},
	"science.org":             {1, 0.98, "Science"},
	"pubmed.ncbi.nlm.nih.gov": {1, 0.97, "PubMed"},
	"ncbi.nlm.nih.gov":        {1, 0.96, "NCBI"},
	"thelancet.com":           {1, 0.97, "The Lancet"},
	"nejm.org":                {1, 0.97, "NEJM"},
	"bmj.com":                 {1, 0.96, "BMJ"},
	"jamanetwork.com":         {1, 0.96, "JAMA"},

	// Tier 1: official government and intergovernmental bodies
	"who.int":        {1, 0.95, "WHO"},
	"cdc.gov":        {1, 0.95, "CDC"},
	"nih.gov":        {1, 0.95, "NIH"},
	"gov.uk":         {1, 0.93, "UK Government"},
	"gov.au":         {1, 0.92, "Australian Government"},
	"europa.eu":      {1, 0.91, "European Union"},
	"un.org":         {1, 0.90, "United Nations"},
	"whitehouse.gov": {1, 0.88, "White House"},
	"congress.gov":   {1, 0.90, "US Congress"},
	"senate.gov":     {1, 0.90, "US Senate"},
	"parliament.uk":  {1, 0.91, "UK Parliament"},

	// Tier 2: major newspapers
	"nytimes.com":            {2, 0.82, "New York Times"},
	"washingtonpost.com":     {2, 0.81, "Washington Post"},
	"theguardian.com":        {2, 0.80, "The Guardian"},
	"ft.com":                 {2, 0.82, "Financial Times"},
	"economist.com":          {2, 0.82, "The Economist"},
	"wsj.com":                {2, 0.80, "Wall Street Journal"},
	"telegraph.co.uk":        {2, 0.75, "The Telegraph"},
	"thetimes.co.uk":         {2, 0.76, "The Times"},
	"independent.co.uk":      {2, 0.73, "The Independent"},
	"sky.com":                {2, 0.75, "Sky News"},
	"cnn.com":                {2, 0.74, "CNN"},
	"nbcnews.com":            {2, 0.74, "NBC News"},
	"abcnews.go.com":         {2, 0.74, "ABC News"},
	"cbsnews.com":            {2, 0.73, "CBS News"},
	"npr.org":                {2, 0.80, "NPR"},
	"pbs.org":                {2, 0.79, "PBS"},
	"politico.com":           {2, 0.76, "Politico"},
	"thehill.com":            {2, 0.72, "The Hill"},
	"axios.com":              {2, 0.76, "Axios"},
	"dw.com":                 {2, 0.78, "Deutsche Welle"},
	"aljazeera.com":          {2, 0.74, "Al Jazeera"},
	"time.com":               {2, 0.73, "TIME"},
	"theatlantic.com":        {2, 0.76, "The Atlantic"},
	"vox.com":                {2, 0.71, "Vox"},
	"wired.com":              {2, 0.72, "Wired"},
	"scientificamerican.com": {2, 0.80, "Scientific American"},
	"newscientist.com":       {2, 0.79, "New Scientist"},

	// Tier 2: established fact-checkers
	"snopes.com":        {2, 0.83, "Snopes"},
	"politifact.com":    {2, 0.83, "PolitiFact"},
	"factcheck.org":     {2, 0.84, "FactCheck.org"},
	"fullfact.org":      {2, 0.84, "Full Fact"},
	"checkyourfact.com": {2, 0.72, "Check Your Fact"},
	"leadstories.com":   {2, 0.71, "Lead Stories"},
	"verafiles.org":     {2, 0.73, "Vera Files"},
	"africacheck.org":   {2, 0.76, "Africa Check"},

	// Tier 3: reference and secondary
	"wikipedia.org":  {3, 0.60, "Wikipedia"},
	"britannica.com": {3, 0.65, "Encyclopaedia Britannica"},
	"statista.com":   {3, 0.58, "Statista"},
	"worldbank.org":  {3, 0.62, "World Bank"},
	"imf.org":        {3, 0.63, "IMF"},

	// Tier 0: known disinfo / satire
	"infowars.com":             {0, 0.02, "InfoWars"},
	"naturalnews.com":          {0, 0.03, "Natural News"},
	"beforeitsnews.com":        {0, 0.02, "Before It's News"},
	"theonion.com":             {0, 0.05, "The Onion (Satire)"},
	"babylonbee.com":           {0, 0.05, "Babylon Bee (Satire)"},
	"worldnewsdailyreport.com": {0, 0.02, "WNDR (Satire)"},
	"empirenews.net":           {0, 0.02, "Empire News (Satire)"},
}

var starMap = map[int]string{
	1: "★★★★★",
	2: "★★★★☆",
	3: "★★★☆☆",
	4: "★★☆☆☆",
	0: "★☆☆☆☆",
}
