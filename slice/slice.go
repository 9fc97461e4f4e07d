package slice

// FindIndex returns the first index of the ref that matches ref t
func FindIndex(vs []string, t string) int {
	for i, v := range vs {
		if v == t {
			return i
		}
	}

	return -1
}

// Contains returns true if the string exists in the slice and false otherwise
func Contains(vs []string, t string) bool {
	return FindIndex(vs, t) > -1
}

func Unique(slice []string) []string {
	uniqMap := make(map[string]struct{})

	var uniqSlice []string

	for _, v := range slice {
		if _, val := uniqMap[v]; !val {
			uniqMap[v] = struct{}{}

			uniqSlice = append(uniqSlice, v)
		}
	}

	return uniqSlice
}
