package oscript

// TestdataMirroredSpheres and TestdataWedgeAssembly are example programs
// used by the lexer and parser tests. They exercise the same
// binder/function/array surface the original GML examples did, written
// around optical assemblies instead of image rendering. They are only
// lexed and parsed, not evaluated: TestdataWedgeAssembly calls point,
// which is not a builtin, and both push a string between the ray and
// trace, which trace does not accept.

var TestdataMirroredSpheres = `
% mirrored doublet: union of two translated spheres, then traced
5.0 mirror sphere
/s
s -1.2 0.0 3.0 translate
s 1.2 1.0 3.0 translate
union
/assembly
assembly
-20.0 0.0 0.0 1.0 0.0 0.0 ray
"sphere.path"
trace
{ }
[]
/ident
true false 123 1.23 "hello"
`

var TestdataWedgeAssembly = `
% glass wedge prism carved out of a box, then traced
1.0 0.5 0.5 point
/tint
1.0 glass box
/block
block 0.0 -0.5 4.0 translate
/block
2.0 45.0 glass wedge
/prism
block prism difference
/result
result
-10.0 10.0 0.0 1.0 0.0 0.0 ray
"box.path"
trace
`
