package seqtrie

import (
	"fmt"
	"strings"
)

// debug utilities

func classInfoStringer(info ClassInfo, sep string) string {
	name := info.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%d:%s[%s]", info.ID, name, strings.Join(info.Members, sep))
}

func classesStringer(infos []ClassInfo, sep string) string {
	sinfos := make([]string, 0, len(infos))

	for _, info := range infos {
		sinfos = append(sinfos, classInfoStringer(info, ","))
	}
	return strings.Join(sinfos, sep)
}
