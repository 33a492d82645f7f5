package util
import (
	"os"
	"fmt"
	"strings"
	"path/filepath"
)

func PickFileAtRandom( files []string ) (string, []string) {
	idx := RandInt( len(files) )
	file := files[idx]
	rest := append( append( []string{}, files[:idx]... ), files[idx+1:]... )
	return file, rest
}

// files in folder with one of the extensions, case-insensitive.
func ReadFiles( folder string, supportedExtensions []string ) ([]string, error) {
	allFiles, err := os.ReadDir( folder )
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, f := range allFiles {
		if f.IsDir() {
			continue
		}
		name := strings.ToLower( f.Name() )
		for _, ext := range supportedExtensions {
			if strings.HasSuffix( name, "." + ext ) {
				result = append( result, filepath.Join( folder, f.Name() ) )
				break
			}
		}
	}
	return result, nil
}

func PickDecoy( folder string, extensions []string ) (string, error) {
	files, err := ReadFiles( folder, extensions )
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no suitable decoy files (%s) in %s", strings.Join( extensions, ", " ), folder)
	}
	file, _ := PickFileAtRandom( files )
	return file, nil
}
