package render

import (
	"os"
	"strings"

	"flist/internal/domain"
)

const (
	// DefaultSuitePackage is the package of the generated suite class
	DefaultSuitePackage = "n4.quat.selenium.acceptancetest.suites"
	// DefaultSuiteClass is the name of the generated suite class
	DefaultSuiteClass = "AllTestsSuite"
)

// JUnitRenderer writes a JUnit 4 suite class listing every path as a
// suite member
type JUnitRenderer struct {
	Suite domain.Suite
}

func (r JUnitRenderer) Render(paths []string) ([]byte, error) {
	pkg := r.Suite.Package
	if pkg == "" {
		pkg = DefaultSuitePackage
	}
	class := r.Suite.Class
	if class == "" {
		class = DefaultSuiteClass
	}

	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteString(NewLine)
	}

	line("package " + pkg + ";")
	line("")
	line("import org.junit.runner.RunWith;")
	line("import org.junit.runners.Suite.SuiteClasses;")
	line("")
	line("@RunWith(org.junit.runners.Suite.class)")
	line("@SuiteClasses( {")
	for i, p := range paths {
		sb.WriteString("\t")
		if i > 0 {
			sb.WriteString(",")
		}
		line(ClassReference(p))
	}
	line("} )")
	line("public class " + class + " { }")

	return []byte(sb.String()), nil
}

// ClassReference turns a file path into a suite entry: every separator
// becomes "." and every occurrence of "java" becomes "class".
//
// The "java" substitution is textual and also rewrites directory names
// ("java/util/A.java" -> "class.util.A.class"). Existing generated suites
// depend on this output, so it is kept as is.
func ClassReference(path string) string {
	ref := strings.ReplaceAll(path, string(os.PathSeparator), ".")
	ref = strings.ReplaceAll(ref, "/", ".")
	return strings.ReplaceAll(ref, "java", "class")
}
