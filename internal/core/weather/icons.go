package weather

// IconMap maps provider icon codes to bundled asset references.
// It is built once at startup and never mutated.
type IconMap struct {
	assets   map[string]string
	fallback string
}

// NewIconMap copies table so later changes by the caller cannot leak in
func NewIconMap(table map[string]string, fallback string) IconMap {
	assets := make(map[string]string, len(table))
	for code, ref := range table {
		assets[code] = ref
	}
	return IconMap{assets: assets, fallback: fallback}
}

// Lookup returns the asset for code, or the fallback for unknown and empty codes
func (m IconMap) Lookup(code string) string {
	if ref, ok := m.assets[code]; ok {
		return ref
	}
	return m.fallback
}

// Fallback returns the default asset
func (m IconMap) Fallback() string {
	return m.fallback
}

// Codes returns the number of known provider codes
func (m IconMap) Codes() int {
	return len(m.assets)
}
