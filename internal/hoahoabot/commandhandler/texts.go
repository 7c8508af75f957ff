package commandhandler

// Reply texts. Placeholders: {t} time as typed, {m} reminder message, {left} remaining time.
var textPools = map[string][]string{
	poolStart: {
		"🤖 Bot hoahoabot online rồi nha!\n\nMuốn ăn cơm thì /ancom,\nnhắc nước thì /uongnuoc HH:MM nhé 😄",
		"Hello bạn!\n\nBot sẵn sàng phục vụ 😎\nThử /ancom hoặc /xuongca đi nè!",
		"Ping ping! Bot đã thức giấc 🐣\n\nLệnh chính: /ancom /uongnuoc /divesinh /xuongca /noel /tet /hoa",
		"Bot đang trực 24/7 nè 😆\n\nCứ quăng lệnh là mình rep liền!",
		"Kết nối thành công 🤝\n\nUống nước nhớ gọi /uongnuoc nha bạn!",
		"Hoahoabot xuất hiện!\n\nĐói thì /ancom,\nbuồn ngủ thì uống nước 😄",
		"Bot đã online 📡\n\nLật bài bằng /start để xem lệnh nhé!",
		"Xin chào!\n\nMình là bot nhắc việc linh tinh cho bạn 😂",
		"Bot bật rồi nha 😎\n\nThử /noel, /tet hoặc /hoa xem vui không!",
		"Có mình ở đây rồi!\n\nĐừng quên ăn cơm và uống nước đúng giờ 😋",
	},
	poolAnCom: {
		"🍚 **Tới giờ ăn cơm rồi đóoo!** 🍚\n\nBụng mà réo lên là não lag liền nha 😵‍💫\nĂn xong rồi chiến tiếp cho máu 😎\n\n🔥 Đi ăn cơm thôi boss!",
		"🍽️ **Ăn cơm điiii!** 🍽️\n\nĐói là dễ cáu, dễ muốn nghỉ làm lắm đó 😂\nNạp năng lượng rồi hẵng chửi deadline nha 😆\n\n👉 Lượn nhẹ đi ăn nào!",
		"🥢 **Cơm nước tới nơi rồi nè!** 🥢\n\nKhông ăn là chiều nay yếu đuối liền 😅\nĂn no mới có lực gánh team chứ 😎\n\n✨ Ăn thôi bạn!",
		"🍚 **Báo động bụng đói!** 🍚\n\nDạ dày kêu inh ỏi rồi đó nghe không 😆\nĂn sớm sống khỏe, ăn trễ sống… run 😵‍💫\n\n🔥 Đi ăn liền!",
		"🍛 **Ăn cơm cái nha!** 🍛\n\nĐói là tụt mood, tụt mood là tụt năng suất 😅\nNạp cơm vô để não chạy mượt hơn 😎\n\n🍚 Triển thôi!",
		"🍜 **Tới giờ nạp năng lượng rồi!** 🍜\n\nBỏ bữa là dạ dày buồn đó nha 😂\nĂn xong quay lại chiến tiếp cho căng 😆\n\n👉 Ăn lẹ nào!",
		"🍲 **Cơm gọi tên bạn kìa!** 🍲\n\nĐể bụng đói là dễ mơ thấy… cơm 😂\nĂn no rồi làm gì cũng trơn tru 😎\n\n🔥 Đi ăn đây!",
		"🍚 **Ăn cơm đúng giờ nha bạn!** 🍚\n\nĐói quá là não đơ liền 😵‍💫\nĂn xong rồi tính tiếp cho tỉnh 😄\n\n✨ Ăn thôi!",
		"🥘 **Ăn đi rồi nói chuyện tiếp!** 🥘\n\nĐói là dễ nói bậy lắm đó 😆\nNạp cơm vô rồi hẵng combat deadline 😎\n\n👉 Lên kèo ăn cơm!",
		"🍚 **Cơm canh sẵn rồi đó!** 🍚\n\nBụng đói là năng lượng off 😅\nĂn xong auto vui vẻ liền 😄\n\n🔥 Đi ăn cơm thôi!",
	},
	poolDiVeSinh: {
		"🚽 **Tới giờ đi vệ sinh rồi đó!** 🚽\n\nNhịn hoài coi chừng bụng biểu tình 😅\nĐi xong nhẹ người, làm việc mới hăng 😎\n\n👉 Đi liền!",
		"🚽 **Xả stress thôi nào!** 🚽\n\nGiữ trong bụng lâu là không ổn đâu 😂\nĐi xong là thấy đời tươi liền 😆\n\n✨ Triển!",
		"🚽 **Đi vệ sinh đi bạn ơi!** 🚽\n\nNhịn là phản khoa học đó nha 😤\nNhẹ bụng nhẹ đầu, khỏe re 😄\n\n👉 Lượn thôi!",
		"🚽 **Tới giờ giải phóng nội tâm!** 🚽\n\nĐi xong là tinh thần phơi phới liền 😆\nĐừng cố chịu đựng nha 😅\n\n🔥 Đi lẹ!",
		"🚽 **Bụng kêu rồi đó!** 🚽\n\nĐừng để nó kêu thành nhạc remix 😆\nĐi cái cho thoải mái nè 😄\n\n👉 Đi ngay!",
		"🚽 **Đi cho nhẹ người nha!** 🚽\n\nNhịn lâu là mệt lắm đó 😵‍💫\nĐi xong quay về chiến tiếp 😎\n\n✨ Let's go!",
		"🚽 **Giờ vàng đi vệ sinh!** 🚽\n\nXả đúng nơi đúng lúc, cuộc đời yên vui 😆\nNhẹ bụng rồi làm gì cũng ngon 😄\n\n👉 Đi nha!",
		"🚽 **Tới giờ rồi còn gì!** 🚽\n\nNhịn là hại thận đó nha 😤\nĐi xong auto tỉnh táo 😎\n\n🔥 Đi thôi!",
		"🚽 **Không đi là bụng giận đó!** 🚽\n\nĐi xong còn có mood làm việc nữa 😄\nNhẹ cái là vui liền 😆\n\n👉 Đi lẹ!",
		"🚽 **Đi phát cho khỏe!** 🚽\n\nBụng nhẹ = tâm trạng nhẹ 😋\nĐi xong quay lại mình chờ 😎\n\n✨ Triển luôn!",
	},
	poolReminderSet: {
		"💧 Ok! Mình nhắc bạn uống nước lúc {t} mỗi ngày nha.",
		"💧 Đã đặt nhắc {t}. Tới giờ mình réo liền 😄",
		"💧 Set kèo uống nước {t} xong rồi đó 😎",
		"💧 Lịch uống nước {t} đã lưu. Nhớ nghe lời bot 😆",
		"💧 Đặt nhắc {t} thành công. Uống đều nha 😋",
		"💧 Done! {t} mỗi ngày mình nhắc một phát.",
		"💧 Oke bạn, tới {t} là ping ping liền.",
		"💧 Nhắc uống nước {t} ok rồi nha!",
		"💧 Mình sẽ nhắc bạn lúc {t} chuẩn giờ VN.",
		"💧 Lịch uống nước {t} đã set.",
	},
	poolReminderAlarm: {
		"💧 Tới giờ uống nước rồi! {m}",
		"💧 Ping ping! Uống nước nè 😄 {m}",
		"💧 Cốc nước đang gọi tên bạn đó 😆 {m}",
		"💧 Nạp nước cho cơ thể thôi! {m}",
		"💧 Đừng để khô cổ nha 😂 {m}",
		"💧 Giờ vàng uống nước! {m}",
		"💧 Tới lịch rồi đó 😋 {m}",
		"💧 Bot nhắc nhẹ: uống nước liền nha {m}",
		"💧 Nhấp vài ngụm cho tỉnh táo nè {m}",
		"💧 Uống nước cái nè, não chạy mượt liền 😎 {m}",
	},
	poolCancelled: {
		"✅ Đã hủy nhắc uống nước rồi nha.",
		"✅ Ok bạn, tắt nhắc uống nước rồi 😄",
		"✅ Hủy lịch nhắc xong rồi đó.",
		"✅ Nhắc uống nước đã off 😆",
		"✅ Done, không nhắc nữa nha.",
		"✅ Lịch nhắc bay màu 🧹",
		"✅ Tắt nhắc thành công.",
		"✅ Okela, hủy nhắc rồi.",
		"✅ Hủy xong, tự giác uống nha 😋",
		"✅ Đã hủy nhắc nước.",
	},
	poolNothingToCancel: {
		"🤔 Chưa có nhắc nào để hủy á.",
		"🤔 Bạn chưa đặt nhắc nước mà 😆",
		"🤔 Không thấy lịch nhắc nào hết.",
		"🤔 Set nhắc trước rồi hủy sau nha 😄",
		"🤔 Trống trơn luôn 😂",
		"🤔 Chưa đặt sao hủy được 😅",
		"🤔 Không có job nào cả.",
		"🤔 Bạn chưa set giờ nhắc đâu.",
		"🤔 Không có nhắc để hủy nè.",
		"🤔 Thử /uongnuoc HH:MM trước đã nhé.",
	},
	poolShiftBefore: {
		"🏁 Còn {left} nữa là xuống ca 😎",
		"🏁 Down ca còn {left} thôi 😄",
		"🏁 Sắp được về! Còn {left} 😆",
		"🏁 {left} nữa là tự doooo 🥳",
		"🏁 Ráng thêm {left} nữa thôi 😅",
		"🏁 Còn {left} nè, chịu khó xíu!",
		"🏁 Gần tới giờ về rồi, còn {left} nha 😄",
		"🏁 Đếm ngược: {left}!",
		"🏁 {left} nữa thôi, bot nóng lòng giùm 😆",
		"🏁 Còn đúng {left} là hết ca!",
	},
	poolShiftAfter: {
		"🏁 Hết ca rồi đó bạn ơi 😆",
		"🏁 Tới giờ về rồi! Ở lại là do đam mê nha 😅",
		"🏁 Ca xong rồi, nghỉ ngơi đi bạn 😄",
		"🏁 Đã qua giờ xuống ca, chúc mừng 🎉",
		"🏁 Hết ca rồi, bot cho bạn về 😎",
		"🏁 Giờ này mà còn làm thì cứng thật 😆",
		"🏁 Down ca rồi nha, bật chế độ relax thôi!",
		"🏁 Ca kết thúc rồi, đi ăn chơi thôi 😋",
		"🏁 Hết ca! Nhớ giữ sức cho mai nha.",
		"🏁 Tạm biệt ca làm, chào tự dooo 🥳",
	},
	poolNoelBefore: {
		"🎄 Còn {left} nữa là tới Noel rồi đó!",
		"🎄 Noel sắp tới! Đếm ngược: {left} 😆",
		"🎄 {left} nữa thôi là nghe Jingle Bells full volume 😄",
		"🎄 Còn {left} nữa là ông già Noel ghé thăm 😎",
		"🎄 Gần Noel lắm rồi, còn {left} nè!",
		"🎄 Đợi Noel hơi lâu nhưng còn {left} thôi 😅",
		"🎄 {left} nữa là ăn gà rán Noel 🥳",
		"🎄 {left} nữa thôi, chuẩn bị quà đi bạn 😋",
		"🎄 Countdown Noel: {left}!",
		"🎄 Noel tới nơi rồi! Còn {left}.",
	},
	poolNoelAfter: {
		"🎄 Noel tới rồi đó! Merry Christmas 🎅",
		"🎄 Noel rồi! Chúc bạn vui vẻ nha 😆",
		"🎄 Giáng Sinh vui vẻ nhé bạn 😄",
		"🎄 Noel đây rồi đóoo! 🎁",
		"🎄 Christmas timeeee 😎",
		"🎄 Noel tới rồi, nhớ ăn gà rán 😋",
		"🎄 Hohoho! Noel rồi 🎅",
		"🎄 Noel đang diễn ra nè, chill thôi!",
		"🎄 Merry Christmas! 🥳",
		"🎄 Noel rồi bạn ơi, quẩy lên!",
	},
	poolTetBefore: {
		"🧧 Còn {left} nữa là tới Tết rồi đó!",
		"🧧 Tết sắp tới! Countdown: {left} 😆",
		"🧧 {left} nữa thôi là được lì xì 😄",
		"🧧 Còn {left} nữa là bánh chưng lên nồi 😎",
		"🧧 Gần Tết lắm rồi, còn {left} nè!",
		"🧧 Đợi Tết hơi lâu nhưng còn {left} thôi 😅",
		"🧧 {left} nữa là nghỉ dài ngày rồi 🥳",
		"🧧 Còn {left} nữa là về quê ăn Tết 😋",
		"🧧 Countdown Tết: {left}!",
		"🧧 Tết tới nơi rồi! Còn {left}.",
	},
	poolTetAfter: {
		"🧧 Tết tới rồi! Chúc mừng năm mới 🎉",
		"🧧 Năm mới vui vẻ nha bạn 😄",
		"🧧 Tết rồi đóoo! Lì xì đâu 😆",
		"🧧 Chúc bạn ăn Tết thật đã 😎",
		"🧧 Happy Lunar New Year 🥳",
		"🧧 Tết đến rồi, chill thôi!",
		"🧧 Tết đây rồi, nhớ ăn bánh chưng 😋",
		"🧧 Năm mới phát tài phát lộc nha!",
		"🧧 Tết rồi bạn ơi, quẩy lên 🎉",
		"🧧 Xuân sang, chúc bạn may mắn!",
	},
	poolHoa: {
		"🌸 Hoa ơi, tên đẹp như hoa nở,\nNụ cười em dịu nhẹ tháng ngày qua.\nAi nhìn thấy cũng lòng thêm rạng rỡ,\nChỉ mong hoài được cạnh một đóa hoa.",
		"🌼 Gọi em là Hoa, trời xanh cũng mát,\nGió ngang qua thơm ngát cả con đường.\nTính em hiền như mây chiều man mác,\nLàm tim này cứ vấn vương… vấn vương.",
		"🌺 Hoa là nắng sớm trong veo,\nLà câu chuyện nhỏ gieo vào bình yên.\nAi gặp một lần là nhớ,\nNhớ hoài cái vẻ dịu hiền dễ thương.",
		"🌻 Hoa cười một cái, ngày vui cả bữa,\nHoa nói một câu, trời nhẹ tênh tênh.\nEm như đóa hướng dương vừa chớm nở,\nĐứng đâu là sáng ở nơi mình.",
		"💐 Hoa không chỉ là tên gọi,\nMà còn là cả một trời đáng yêu.\nNhẹ nhàng như gió qua chiều,\nMà làm người khác thương nhiều không hay.",
		"🌷 Hoa bước qua, mùa xuân ghé lại,\nMắt em cười làm phố cũng thành thơ.\nAi bảo đời nhiều khi mệt mỏi,\nGặp em rồi, tự dưng thấy đợi chờ.",
		"🏵️ Hoa là hoa của lòng người,\nKhông cần rực rỡ vẫn tươi lạ thường.\nHiền như giọt nắng trên tường,\nMà sao ai cũng nhớ thương thật nhiều.",
		"🌹 Hoa đẹp chẳng phải vì son phấn,\nMà vì em sống chân thành, dễ thương.\nMột chút dịu dàng, một chút sâu thương,\nKhiến ai gặp cũng muốn vương… một đời.",
		"🌸 Hoa ơi, em là mùa trong mắt,\nLà giấc mơ lành giữa bộn bề lo.\nChỉ cần em cười là lòng bớt chật,\nNhư cánh hoa rơi cũng hóa thành thơ.",
		"🌼 Nếu hỏi ai là điều dễ mến,\nThì chắc chắn có tên của Hoa.\nVừa dịu dàng, vừa hay quan tâm lắm,\nHoa ở đâu, ở đó thấy ôn hòa.",
	},
}
