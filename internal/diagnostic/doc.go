// Package diagnostic collects structured build-time findings for the chunk
// generator.
//
// Errors fail the build (duplicate surface names, unencodable field
// declarations). Warnings record soft failures such as declarations the
// reflector had to skip. Infos carry notes worth surfacing in verbose mode,
// such as conversions whose behavior differs from what their name suggests.
package diagnostic
