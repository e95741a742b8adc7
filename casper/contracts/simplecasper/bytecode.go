// Built-in default bytecodes of the four genesis contracts, hex-encoded.
//
// These are the images deployed at chain start when the chain configuration
// does not override them. DefaultCasperContract embeds the literal
// "<rlp_decoder>" placeholder where the contract references the RLP decoder;
// the resolver substitutes the configured decoder address (40 hex chars)
// before decoding, so the constant is not valid hex until then. The other
// three decode as-is. A decode failure of any of these constants means the
// build itself is corrupted and is treated as fatal.

package simplecasper

// RlpDecoderPlaceholder is the substring of DefaultCasperContract replaced
// with the hex form of the RLP-decoder address during parameter resolution.
const RlpDecoderPlaceholder = "<rlp_decoder>"

const (
	// DefaultCasperContract is the vote contract (Casper FFG).
	DefaultCasperContract = "610634600b6000396106346000f3155460d491f3015720f3011054918101f355" +
		"20005736811552805b35150360f391166088101691fd00815401515403a19003" +
		"fd0080905b525455918110a1f3035b615a5415909090159061618d1054355254" +
		"006184e6805152a15591909103010055011490140160fc81fd80a10056803690" +
		"54520061d2a1101620525191140014015690011091a101032091614da4915b51" +
		"801535551481813673<rlp_decoder>16573535101461225ffd145590560360d" +
		"b3581105b00615d805500101590363614542056512090563657602616a1515ba" +
		"120035416552056fd351581618edbf301a115575b91159010f300fd10601e813" +
		"515a151618f3d038157a1541460316085f314550120fd80010155165bfd00805" +
		"b5400f38190fd00808057a135a19057a15503013581576075358014520060889" +
		"15b525161aec4a135fd9052911452555156fd033510145b2081fd9056565755a" +
		"1805736601f810355000351365bfd355b610de7fd913557fd520152565b80031" +
		"05151205610160381563520145455f351a1145651615917809056a1a1a114019" +
		"110f3a1fd10f381a1f314fd54515155a1140135168020a10014fd3657a154815" +
		"220fdf3604060288054815780801401fd540335801460f6005761ea548115f31" +
		"014602b"

	// DefaultPurityCheckerContract validates that validation code is pure.
	DefaultPurityCheckerContract = "6101c2600b6000396101c26000f38152161057551681545ba18060a636165b52" +
		"0060691491a151a100800060e210558151521536a152a15b61b8d5805b618917" +
		"9054a1511557f3a136001090511501fd355191608703168051525257905b0320" +
		"54571681602a91548051607420915b81018156f3511610f35252810301362003" +
		"90523651158035205610fd1401159103fd103581573591815b205115a191fda1" +
		"a1160136"

	// DefaultMsgHasherContract hashes vote messages for signature checks.
	DefaultMsgHasherContract = "6100b8600b6000396100b86000f3149136143551575110368116570360289115" +
		"1652100103a154815b5155a18054f352143690816188ba5603915ba191011480" +
		"521060e252901657145680915156"

	// DefaultRlpDecoderContract decodes RLP payloads for the vote contract.
	DefaultRlpDecoderContract = "610156600b6000396101566000f3521090f35400010356366075011603523552" +
		"552036803651616929810156a160cd5400160354201636801481205514565251" +
		"913661fb2f00f39161c3f9360181a1fd01fd36f315f3031451035b15fdf3f356" +
		"1455015ba116011661d7ef813661cd7491f35b101516568016205260f41060e2"
)
