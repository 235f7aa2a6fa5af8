package scaffold

import "text/template"

// skeletonBody is the full content of a freshly generated test file. The
// class name slots into the suite type name, the suite registration call,
// the beginTest banner and the self-registering instance at the bottom.
// Existing projects contain files generated from exactly this text, so
// the odd trailing spaces stay as they are.
const skeletonBody = "\n" +
	"\n" +
	"#include <juce_core/juce_core.h>\n" +
	"\n" +
	"class Test_{{.Name}} : public TestSuite\n" +
	"{\n" +
	"public:\n" +
	"    Test_{{.Name}}() \n" +
	"    : TestSuite(\"{{.Name}}\", \"!!! category !!!\")\n" +
	"    {\n" +
	"\n" +
	"    }\n" +
	"\n" +
	"    void runTest() override\n" +
	"    {\n" +
	"        beginTest(\"!!! WRITE SOME TESTS FOR THE {{.Name}} Class !!!\");\n" +
	"\n" +
	"        /*\n" +
	"          To create a test, call `test(\"testName\", testLambda);`\n" +
	"          To (temporarily) skip a test, call `skipTest(\"testName\", testLambda);`\n" +
	"          To define setup for a block of tests, call `setup(setupLambda);`\n" +
	"          To define cleanup for a block of tests, call `tearDown(tearDownLambda);`\n" +
	"\n" +
	"          Setup and TearDown lambdas will be called before/after each test that \n" +
	"          is executed, and remain in effect until explicitly replaced. \n" +
	"\n" +
	"          All the functionality of the JUCE `UnitTest` class is available from\n" +
	"          within these tests. \n" +
	"        */\n" +
	"    }\n" +
	"private:\n" +
	"    // !!! test class member vars here...\n" +
	"};\n" +
	"\n" +
	"static Test_{{.Name}} test{{.Name}};\n"

// includeBody is the block appended to a class source so the generated
// test file is compiled into its translation unit when RUN_UNIT_TESTS
// is set.
const includeBody = "\n" +
	"#if RUN_UNIT_TESTS\n" +
	"#include \"{{.Dir}}/test_{{.Name}}{{.Ext}}\"\n" +
	"#endif\n"

var (
	skeletonTmpl = template.Must(template.New("skeleton").Parse(skeletonBody))
	includeTmpl  = template.Must(template.New("include").Parse(includeBody))
)

type skeletonData struct {
	Name string
}

type includeData struct {
	Name string
	Dir  string
	Ext  string
}
