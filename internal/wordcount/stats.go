package wordcount

type Stats struct {
	Buckets      int     `json:"buckets"`
	Keys         int     `json:"keys"`
	Words        int     `json:"words"`
	Total        int     `json:"total"`
	LoadFactor   float64 `json:"load_factor"`
	LongestChain int     `json:"longest_chain"`
	EmptyBuckets int     `json:"empty_buckets"`

	// Words sharing a key with another word.
	Collisions int `json:"collisions"`
}
