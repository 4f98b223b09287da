/*
Package config loads optional recolor run files.

	            +-------------+
	            |   Config    |
	            | (Run file)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Pre-fills answers the run command would otherwise prompt for
- Narrows or widens the set of scanned file extensions
- Excludes paths with doublestar ignore patterns

🔄 Flow:
1. Picks a parser from the file extension
2. Decodes with unknown fields rejected
3. Applies defaults (output name, extensions)
4. Validates extensions, ignore patterns and output name

📝 Example (HCL):

	search      = ["pink", "rose"]
	replace     = colors.red
	root        = "./resources"
	ignore      = ["node_modules", "vendor/**"]
*/
package config
