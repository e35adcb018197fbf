package glyph

// font5 is a proportional 5 row font. Each glyph lists its rows top to
// bottom with '#' for a lit pixel.
var font5 = map[rune][]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {"#", "#", "#", "#", "#"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'a': {"##.", "..#", ".##", "#.#", ".##"},
	'b': {"#..", "#..", "###", "#.#", "###"},
	'c': {"...", "...", "###", "#..", "###"},
	'd': {"..#", "..#", "###", "#.#", "###"},
	'e': {".#.", "#.#", "###", "#..", ".##"},
	'f': {".##", ".#.", "###", ".#.", ".#."},
	'g': {".##", "#.#", ".##", "..#", "##."},
	'h': {"#..", "#..", "###", "#.#", "#.#"},
	'i': {".", "#", ".", "#", "#"},
	'j': {"..#", "...", "..#", "#.#", ".#."},
	'k': {"#..", "#.#", "##.", "##.", "#.#"},
	'l': {"#.", "#.", "#.", "#.", ".#"},
	'm': {".....", ".....", "####.", "#.#.#", "#.#.#"},
	'n': {"...", "...", "##.", "#.#", "#.#"},
	'o': {"...", ".#.", "#.#", "#.#", ".#."},
	'p': {"...", "##.", "#.#", "##.", "#.."},
	'q': {".##", "#.#", ".##", "..#", "..#"},
	'r': {"...", "...", "###", "#..", "#.."},
	's': {".##", "#..", ".#.", "..#", "##."},
	't': {".#.", "###", ".#.", ".#.", "..#"},
	'u': {"...", "...", "#.#", "#.#", ".##"},
	'v': {"...", "...", "#.#", "#.#", ".#."},
	'w': {".....", ".....", "#.#.#", "#.#.#", ".#.#."},
	'x': {"...", "...", "#.#", ".#.", "#.#"},
	'y': {"#.#", "#.#", ".##", "..#", "##."},
	'z': {"....", "####", "..#.", ".#..", "####"},
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'B': {"##.", "#.#", "##.", "#.#", "##."},
	'C': {".##", "#..", "#..", "#..", ".##"},
	'D': {"##.", "#.#", "#.#", "#.#", "##."},
	'E': {"###", "#..", "##.", "#..", "###"},
	'F': {"###", "#..", "##.", "#..", "#.."},
	'G': {".###", "#...", "#.##", "#..#", ".##."},
	'H': {"#.#", "#.#", "###", "#.#", "#.#"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'J': {"####", "..#.", "..#.", "#.#.", ".#.."},
	'K': {"#.#", "##.", "#..", "##.", "#.#"},
	'L': {"#..", "#..", "#..", "#..", "###"},
	'M': {"#...#", "##.##", "#.#.#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#"},
	'O': {".#.", "#.#", "#.#", "#.#", ".#."},
	'P': {"###", "#.#", "###", "#..", "#.."},
	'Q': {".##.", "#..#", "#..#", "#.#.", ".#.#"},
	'R': {"##.", "#.#", "###", "##.", "#.#"},
	'S': {"###", "#..", "###", "..#", "###"},
	'T': {"###", ".#.", ".#.", ".#.", ".#."},
	'U': {"#.#", "#.#", "#.#", "#.#", "###"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	'W': {"#...#", "#...#", "#.#.#", "#.#.#", ".#.#."},
	'X': {"#.#", "#.#", ".#.", "#.#", "#.#"},
	'Y': {"#.#", "#.#", "#.#", ".#.", ".#."},
	'Z': {"###", "..#", ".#.", "#..", "###"},
	'.': {".", ".", ".", ".", "#"},
	' ': {".", ".", ".", ".", "."},
	':': {".", "#", ".", "#", "."},
	'=': {"...", "###", "...", "###", "..."},
	'!': {"#", "#", "#", ".", "#"},
	',': {"..", "..", "..", ".#", "#."},
	'_': {"...", "...", "...", "...", "###"},
	'-': {"...", "...", "###", "...", "..."},
	'+': {"...", ".#.", "###", ".#.", "..."},
	'/': {"....#", "...#.", "..#..", ".#...", "#...."},
	'\\': {"#....", ".#...", "..#..", "...#.", "....#"},
	'*': {"..#..", "#.#.#", ".###.", ".#.#.", "#...#"},
	'\'': {"#", "#", ".", ".", "."},
	'"': {"#.#", "#.#", "...", "...", "..."},
	'£': {".##", ".#.", "###", ".#.", "###"},
	'$': {"#####", "#.#..", "#####", "..#.#", "#####"},
	'€': {"..##", ".#..", "###.", ".#..", "..##"},
	'%': {"#...#", "#..#.", "..#..", ".#..#", "#...#"},
	'^': {".#.", "#.#", "...", "...", "..."},
	'#': {".#.#.", "#####", ".#.#.", "#####", ".#.#."},
	'`': {"#.", ".#", "..", "..", ".."},
	'~': {".....", ".#...", "#.#.#", "...#.", "....."},
	'&': {".#...", "#.#..", ".##.#", "#..#.", ".##.#"},
	'(': {".#", "#.", "#.", "#.", ".#"},
	')': {"#.", ".#", ".#", ".#", "#."},
	'[': {"##", "#.", "#.", "#.", "##"},
	']': {"##", ".#", ".#", ".#", "##"},
	'{': {"..#", ".#.", "##.", ".#.", "..#"},
	'}': {"#..", ".#.", ".##", ".#.", "#.."},
	'>': {"#..", ".#.", "..#", ".#.", "#.."},
	'<': {"..#", ".#.", "#..", ".#.", "..#"},
	'|': {"#", "#", "#", "#", "#"},
	'?': {"###", "..#", ".##", "...", ".#."},
	';': {"..", ".#", "..", ".#", "#."},
	'█': {"#####", "#####", "#####", "#####", "#####"},
	'¬': {"...", "...", "###", "..#", "..."},
	'@': {".###.", "#..##", "#.#.#", "#..##", ".#..."},
}
