package conv

// digitPairs maps every value in 0..99 to its two-character decimal text.
// Consuming two digits per division keeps the hot loop at half the
// divisions of a digit-at-a-time writer.
const digitPairs = "" +
	"0001020304050607080910111213141516171819" +
	"2021222324252627282930313233343536373839" +
	"4041424344454647484950515253545556575859" +
	"6061626364656667686970717273747576777879" +
	"8081828384858687888990919293949596979899"
