/*
Package status writes recolored files under the output root and tracks what
happened to every scanned file.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Summary |
	| (Output)  |           | (Report)|
	+-----------+           +---------+

🎯 Purpose:
- Creates the output root and its marker file once
- Writes files at their mirrored relative path, atomically
- Tracks per-file status (written, skipped, failed, clean)
- Formats the end of run summary

⚡ Invariants:
- Nothing is ever written outside the output root
- Skipped and failed files produce no output artifact
- The marker file is only written when the output root is created
*/
package status
