package useragent

import (
	"regexp"
	"strings"
)

// Architecture patterns in precedence order; x86_64 must win over x86.
var cpuPatterns = []struct {
	arch  string
	regex *regexp.Regexp
}{
	{ArchAMD64, regexp.MustCompile(`(?:amd|x(?:(?:86|64)[-_])?|wow|win)64[;)]`)},
	{ArchIA32, regexp.MustCompile(`(?:i[3-6]86|x86|ia32)[;)]`)},
	{ArchARM64, regexp.MustCompile(`\b(?:aarch64|arm64|armv8l?)\b`)},
	{ArchARM, regexp.MustCompile(`\barm(?:v[67]\w*)?\b`)},
	{ArchPPC, regexp.MustCompile(`\b(?:ppc|powerpc)`)},
}

// ParseCPU detects the processor architecture in ua.
func ParseCPU(ua string) CPU {
	return parseCPU(strings.ToLower(ua))
}

func parseCPU(lowerUA string) CPU {
	for _, p := range cpuPatterns {
		if p.regex.MatchString(lowerUA) {
			return CPU{Architecture: p.arch}
		}
	}
	return CPU{}
}
