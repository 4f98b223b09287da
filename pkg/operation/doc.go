/*
Package operation walks a resource tree and recolors it file by file.

	+-------------+
	|  Operation  |
	|   (Walk)    |
	+------+------+
	       |
	+------+------+
	|   Process   |
	| detect/plan |
	|  /rewrite   |
	+------+------+
	       |
	+------+------+
	|   Status    |
	|  (Output)   |
	+-------------+

🎯 Purpose:
- Finds eligible resource files under the scanned root
- Runs detection, asks the planner for a color map, rewrites content
- Hands recolored content to the status package for storage

🔄 Flow:
1. Resolve the scanned root and the sibling output root
2. Walk the root in lexical order, never entering the output root
3. For each eligible file: detect, prompt, rewrite, write
4. Record every outcome; a failing file never stops the walk

⚡ Invariants:
- One file is fully handled before the next one is read
- Source files are only ever read
- Skipped, unchanged and failed files leave no output artifact
*/
package operation
