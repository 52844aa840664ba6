package collect

import (
	"sort"
	"strings"
)

// ExtractApps counts installed packages from `pm list packages` output.
// Third-party identifiers are returned sorted; totals come from the raw
// listings.
func ExtractApps(all, thirdParty string) Apps {
	allList := packageList(all)
	thirdList := packageList(thirdParty)
	sort.Strings(thirdList)

	return Apps{
		TotalPackages:   len(allList),
		ThirdPartyCount: len(thirdList),
		SystemCount:     len(allList) - len(thirdList),
		ThirdPartyApps:  thirdList,
	}
}

func packageList(out string) []string {
	pkgs := []string{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pkgs = append(pkgs, strings.TrimPrefix(line, "package:"))
	}

	return pkgs
}
