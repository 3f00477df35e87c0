// This file is part of Bitsim.
//
// Bitsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bitsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bitsim.  If not, see <https://www.gnu.org/licenses/>.

package images

// the font used for scrolling text and single characters. the glyphs cover
// the printable ASCII characters.
var font = map[rune]*Image{
	' ': library("00000:00000:00000:00000:00000"),
	'!': library("09000:09000:09000:00000:09000"),
	'"': library("09090:09090:00000:00000:00000"),
	'#': library("09090:99999:09090:99999:09090"),
	'$': library("09990:99009:09990:90099:09990"),
	'%': library("99009:90090:00900:09009:90099"),
	'&': library("09900:90090:09900:90090:09909"),
	'\'': library("09000:09000:00000:00000:00000"),
	'(': library("00900:09000:09000:09000:00900"),
	')': library("09000:00900:00900:00900:09000"),
	'*': library("00000:09090:00900:09090:00000"),
	'+': library("00000:00900:09990:00900:00000"),
	',': library("00000:00000:00000:00900:09000"),
	'-': library("00000:00000:09990:00000:00000"),
	'.': library("00000:00000:00000:09000:00000"),
	'/': library("00009:00090:00900:09000:90000"),
	'0': library("09900:90090:90090:90090:09900"),
	'1': library("00900:09900:00900:00900:09990"),
	'2': library("99900:00090:09900:90000:99990"),
	'3': library("99990:00090:00900:90090:09900"),
	'4': library("00990:09090:90090:99999:00090"),
	'5': library("99999:90000:99990:00009:99990"),
	'6': library("00090:00900:09990:90009:09990"),
	'7': library("99999:00090:00900:09000:90000"),
	'8': library("09990:90009:09990:90009:09990"),
	'9': library("09990:90009:09990:00900:09000"),
	':': library("00000:09000:00000:09000:00000"),
	';': library("00000:00900:00000:00900:09000"),
	'<': library("00090:00900:09000:00900:00090"),
	'=': library("00000:09990:00000:09990:00000"),
	'>': library("09000:00900:00090:00900:09000"),
	'?': library("09990:90009:00990:00000:00900"),
	'@': library("09990:90009:90909:90099:09900"),
	'A': library("09900:90090:99990:90090:90090"),
	'B': library("99900:90090:99900:90090:99900"),
	'C': library("09990:90000:90000:90000:09990"),
	'D': library("99900:90090:90090:90090:99900"),
	'E': library("99990:90000:99900:90000:99990"),
	'F': library("99990:90000:99900:90000:90000"),
	'G': library("09990:90000:90099:90009:09990"),
	'H': library("90090:90090:99990:90090:90090"),
	'I': library("99900:09000:09000:09000:99900"),
	'J': library("99999:00090:00090:90090:09900"),
	'K': library("90090:90900:99000:90900:90090"),
	'L': library("90000:90000:90000:90000:99990"),
	'M': library("90009:99099:90909:90009:90009"),
	'N': library("90009:99009:90909:90099:90009"),
	'O': library("09900:90090:90090:90090:09900"),
	'P': library("99900:90090:99900:90000:90000"),
	'Q': library("09900:90090:90090:09900:00990"),
	'R': library("99900:90090:99900:90090:90009"),
	'S': library("09990:90000:09900:00090:99900"),
	'T': library("99999:00900:00900:00900:00900"),
	'U': library("90090:90090:90090:90090:09900"),
	'V': library("90009:90009:90009:09090:00900"),
	'W': library("90009:90009:90909:99099:90009"),
	'X': library("90090:90090:09900:90090:90090"),
	'Y': library("90009:09090:00900:00900:00900"),
	'Z': library("99990:00900:09000:90000:99990"),
	'[': library("09990:09000:09000:09000:09990"),
	'\\': library("90000:09000:00900:00090:00009"),
	']': library("09990:00090:00090:00090:09990"),
	'^': library("00900:09090:00000:00000:00000"),
	'_': library("00000:00000:00000:00000:99999"),
	'`': library("09000:00900:00000:00000:00000"),
	'a': library("00000:09990:90090:90090:09999"),
	'b': library("90000:90000:99900:90090:99900"),
	'c': library("00000:09990:90000:90000:09990"),
	'd': library("00090:00090:09990:90090:09990"),
	'e': library("09900:90090:99900:90000:09990"),
	'f': library("00990:09000:99900:09000:09000"),
	'g': library("09990:90090:09990:00090:09900"),
	'h': library("90000:90000:99900:90090:90090"),
	'i': library("09000:00000:09000:09000:09000"),
	'j': library("00090:00000:00090:00090:09900"),
	'k': library("90000:90900:99000:90900:90090"),
	'l': library("09000:09000:09000:09000:00990"),
	'm': library("00000:99099:90909:90009:90009"),
	'n': library("00000:99900:90090:90090:90090"),
	'o': library("00000:09900:90090:90090:09900"),
	'p': library("00000:99900:90090:99900:90000"),
	'q': library("00000:09990:90090:09990:00090"),
	'r': library("00000:09990:90000:90000:90000"),
	's': library("00000:00990:09000:00900:99000"),
	't': library("09000:09000:09990:09000:00999"),
	'u': library("00000:90090:90090:90090:09999"),
	'v': library("00000:90009:90009:09090:00900"),
	'w': library("00000:90009:90009:90909:99099"),
	'x': library("00000:90090:09900:09900:90090"),
	'y': library("00000:90009:09090:00900:99000"),
	'z': library("00000:99990:00900:09000:99990"),
	'{': library("00990:00900:09900:00900:00990"),
	'|': library("09000:09000:09000:09000:09000"),
	'}': library("99000:09000:09900:09000:99000"),
	'~': library("00000:00000:09900:00099:00000"),
}

// Glyph returns the image for the character. Characters not in the font are
// shown as a question mark.
func Glyph(r rune) *Image {
	if g, ok := font[r]; ok {
		return g
	}
	return font['?']
}
