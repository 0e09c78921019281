// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package venues

// Category names used by the builtin table.
const (
	CategoryAIML    = "AI/ML"
	CategoryCV      = "Computer Vision"
	CategoryNLP     = "NLP"
	CategoryData    = "Databases / Data Mining"
	CategorySystems = "Systems / Security"
	CategoryTheory  = "Theory"
	CategoryJournal = "Top Journal"
)

// Builtin returns the registry of preconfigured top venues.
func Builtin() *Registry {
	return NewRegistry([]Venue{
		{
			ID:         "ICML",
			Name:       "International Conference on Machine Learning",
			ListingURL: "https://icml.cc/virtual/{year}/papers.html",
			SearchURL:  "https://icml.cc/virtual/{year}/papers.html?search={keyword}",
			BaseURL:    "https://icml.cc",
			Years:      []string{"2020", "2021", "2022", "2023", "2024", "2025"},
			Category:   CategoryAIML,
		},
		{
			ID:         "NeurIPS",
			Name:       "Neural Information Processing Systems",
			ListingURL: "https://nips.cc/virtual/{year}/papers.html",
			SearchURL:  "https://nips.cc/virtual/{year}/papers.html?search={keyword}",
			BaseURL:    "https://nips.cc",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryAIML,
		},
		{
			ID:         "ICLR",
			Name:       "International Conference on Learning Representations",
			ListingURL: "https://iclr.cc/virtual/{year}/papers.html",
			SearchURL:  "https://iclr.cc/virtual/{year}/papers.html?search={keyword}",
			BaseURL:    "https://iclr.cc",
			Years:      []string{"2020", "2021", "2022", "2023", "2024", "2025"},
			Category:   CategoryAIML,
		},
		{
			ID:         "AAAI",
			Name:       "Association for the Advancement of Artificial Intelligence",
			ListingURL: "https://aaai.org/{year}/accepted-papers/",
			BaseURL:    "https://aaai.org",
			Years:      []string{"2020", "2021", "2022", "2023", "2024", "2025"},
			Category:   CategoryAIML,
		},
		{
			ID:         "IJCAI",
			Name:       "International Joint Conference on Artificial Intelligence",
			ListingURL: "https://ijcai-{year}.org/accepted-papers",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryAIML,
		},
		{
			ID:         "CVPR",
			Name:       "Conference on Computer Vision and Pattern Recognition",
			ListingURL: "https://cvpr{year}.thecvf.com/accepted-papers",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryCV,
		},
		{
			ID:         "ICCV",
			Name:       "International Conference on Computer Vision",
			ListingURL: "https://iccv{year}.thecvf.com/accepted-papers",
			Years:      []string{"2021", "2023"},
			Category:   CategoryCV,
		},
		{
			ID:         "ECCV",
			Name:       "European Conference on Computer Vision",
			ListingURL: "https://eccv{year}.eu/accepted-papers/",
			BaseURL:    "https://eccv{year}.eu",
			Years:      []string{"2020", "2022", "2024"},
			Category:   CategoryCV,
		},
		{
			ID:         "ACL",
			Name:       "Association for Computational Linguistics",
			ListingURL: "https://{year}.aclweb.org/program/accepted/",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryNLP,
		},
		{
			ID:         "EMNLP",
			Name:       "Empirical Methods in Natural Language Processing",
			ListingURL: "https://{year}.emnlp.org/program/accepted/",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryNLP,
		},
		{
			ID:         "NAACL",
			Name:       "North American Chapter of ACL",
			ListingURL: "https://{year}.naacl.org/program/accepted/",
			Years:      []string{"2021", "2022", "2024"},
			Category:   CategoryNLP,
		},
		{
			ID:         "KDD",
			Name:       "Knowledge Discovery and Data Mining",
			ListingURL: "https://kdd.org/kdd{year}/accepted-papers/",
			BaseURL:    "https://kdd.org",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryData,
		},
		{
			ID:         "SIGMOD",
			Name:       "ACM SIGMOD International Conference on Management of Data",
			ListingURL: "https://sigmod{year}.org/accepted-papers/",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryData,
		},
		{
			ID:         "VLDB",
			Name:       "Very Large Data Bases",
			ListingURL: "https://vldb.org/{year}/accepted-papers/",
			BaseURL:    "https://vldb.org",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryData,
		},
		{
			ID:         "SOSP",
			Name:       "Symposium on Operating Systems Principles",
			ListingURL: "https://sosp{year}.org/accepted-papers/",
			Years:      []string{"2021", "2023"},
			Category:   CategorySystems,
		},
		{
			ID:         "OSDI",
			Name:       "Operating Systems Design and Implementation",
			ListingURL: "https://www.usenix.org/conference/osdi{year}/accepted-papers",
			BaseURL:    "https://www.usenix.org",
			Years:      []string{"2020", "2022", "2024"},
			Category:   CategorySystems,
		},
		{
			ID:         "CCS",
			Name:       "ACM Conference on Computer and Communications Security",
			ListingURL: "https://www.sigsac.org/ccs/{year}/accepted-papers/",
			BaseURL:    "https://www.sigsac.org",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategorySystems,
		},
		{
			ID:         "STOC",
			Name:       "Symposium on Theory of Computing",
			ListingURL: "https://stoc{year}.org/accepted-papers/",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryTheory,
		},
		{
			ID:         "FOCS",
			Name:       "Foundations of Computer Science",
			ListingURL: "https://focs{year}.org/accepted-papers/",
			Years:      []string{"2020", "2021", "2022", "2023", "2024"},
			Category:   CategoryTheory,
		},
		{
			ID:         "TPAMI",
			Name:       "IEEE Transactions on Pattern Analysis and Machine Intelligence",
			ListingURL: "https://ieeexplore.ieee.org/xpl/RecentIssue.jsp?punumber=34",
			BaseURL:    "https://ieeexplore.ieee.org",
			Years:      []string{"2020", "2021", "2022", "2023", "2024", "2025"},
			Category:   CategoryJournal,
		},
	})
}
