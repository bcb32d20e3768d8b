package fileset

// Merge maps each relative path to the root of the first fileset, in
// argument order, whose Files contains it
func Merge(filesets ...*Fileset) (map[string]string, error) {
	result := make(map[string]string)
	for _, f := range filesets {
		files, err := f.Files()
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if _, ok := result[file]; !ok {
				result[file] = f.path
			}
		}
	}
	return result, nil
}
