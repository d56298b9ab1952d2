package customer

// DedupeByKey mantém a primeira ocorrência de cada chave e devolve as repetições em ordem de encontro.
// Registros sem chave nunca são deduplicados entre si.
func DedupeByKey[T any](records []T, keyFn func(T) (string, bool)) (unique, duplicates []T) {
	unique = make([]T, 0, len(records))
	duplicates = make([]T, 0)
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		key, ok := keyFn(record)
		if !ok {
			unique = append(unique, record)
			continue
		}

		if _, exists := seen[key]; exists {
			duplicates = append(duplicates, record)
			continue
		}

		seen[key] = struct{}{}
		unique = append(unique, record)
	}

	return unique, duplicates
}
