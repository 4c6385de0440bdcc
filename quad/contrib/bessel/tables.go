// Copyright 2025 go-quad Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bessel

import "github.com/ajroetker/go-quad/quad"

// fit is a rational minimax approximation num(z)/den(z). Both coefficient
// sets are stored low-degree first; den carries an implicit leading 1 one
// degree above its last stored coefficient.
type fit struct {
	num []quad.Float128
	den []quad.Float128

	// lo and hi bound the fitted variable: x for the near fits, 1/x for the
	// far fits.
	lo, hi float64

	// peak is the documented peak relative error of the fit.
	peak float64
}

func coeffs(s ...string) []quad.Float128 {
	c := make([]quad.Float128, len(s))
	for i, v := range s {
		c[i] = quad.MustParse(v)
	}
	return c
}

// J1(x) = x/2 + x z R(z), z = x^2, 0 <= x <= 2.
var j1NearFit = fit{
	num: coeffs(
		"-5.943799577386942855938508697619735179660e16",
		"1.812087021305009192259946997014044074711e15",
		"-2.761698314264509665075127515729146460895e13",
		"2.091089497823600978949389109350658815972e11",
		"-8.546413231387036372945453565654130054307e8",
		"1.797229225249742247475464052741320612261e6",
		"-1.559552840946694171346552770008812083969e3",
	),
	den: coeffs(
		"9.510079323819108569501613916191477479397e17",
		"1.063193817503280529676423936545854693915e16",
		"5.934143516050192600795972192791775226920e13",
		"2.168000911950620999091479265214368352883e11",
		"5.673775894803172808323058205986256928794e8",
		"1.080329960080981204840966206372671147224e6",
		"1.411951256636576283942477881535283304912e3",
	),
	lo: 0, hi: 2, peak: 1.9e-35,
}

// Y1(x) = 2/pi (log(x) J1(x) - 1/x) + x R(z), z = x^2, 0 <= x <= 2.
var y1NearFit = fit{
	num: coeffs(
		"-6.804415404830253804408698161694720833249e19",
		"1.805450517967019908027153056150465849237e19",
		"-8.065747497063694098810419456383006737312e17",
		"1.401336667383028259295830955439028236299e16",
		"-1.171654432898137585000399489686629680230e14",
		"5.061267920943853732895341125243428129150e11",
		"-1.096677850566094204586208610960870217970e9",
		"9.541172044989995856117187515882879304461e5",
	),
	den: coeffs(
		"3.470629591820267059538637461549677594549e20",
		"4.120796439009916326855848107545425217219e18",
		"2.477653371652018249749350657387030814542e16",
		"9.954678543353888958177169349272167762797e13",
		"2.957927997613630118216218290262851197754e11",
		"6.748421382188864486018861197614025972118e8",
		"1.173453425218010888004562071020305709319e6",
		"1.450335662961034949894009554536003377187e3",
	),
	lo: 0, hi: 2, peak: 6.2e-38,
}

// P1(x) = 1 + z R(z), z = 1/x^2, 0 <= 1/x <= 0.0625 (x >= 16).
var pFar0 = fit{
	num: coeffs(
		"5.143674369359646114999545149085139822905e-16",
		"4.836645664124562546056389268546233577376e-13",
		"1.730945562285804805325011561498453013673e-10",
		"3.047976856147077889834905908605310585810e-8",
		"2.855227609107969710407464739188141162386e-6",
		"1.439362407936705484122143713643023998457e-4",
		"3.774489768532936551500999699815873422073e-3",
		"4.723962172984642566142399678920790598426e-2",
		"2.359289678988743939925017240478818248735e-1",
		"3.032580002220628812728954785118117124520e-1",
	),
	den: coeffs(
		"4.389268795186898018132945193912677177553e-15",
		"4.132671824807454334388868363256830961655e-12",
		"1.482133328179508835835963635130894413136e-9",
		"2.618941412861122118906353737117067376236e-7",
		"2.467854246740858470815714426201888034270e-5",
		"1.257192927368839847825938545925340230490e-3",
		"3.362739031941574274949719324644120720341e-2",
		"4.384458231338934105875343439265370178858e-1",
		"2.412830809841095249170909628197264854651e0",
		"4.176078204111348059102962617368214856874e0",
	),
	lo: 0, hi: 0.0625, peak: 3.6e-36,
}

// Q1(x) = (0.375 + z R(z))/x, z = 1/x^2, 0 <= 1/x <= 0.0625 (x >= 16).
var qFar0 = fit{
	num: coeffs(
		"-3.917420835712508001321875734030357393421e-18",
		"-4.440311387483014485304387406538069930457e-15",
		"-1.951635424076926487780929645954007139616e-12",
		"-4.318256438421012555040546775651612810513e-10",
		"-5.231244131926180765270446557146989238020e-8",
		"-3.540072702902043752460711989234732357653e-6",
		"-1.311017536555269966928228052917534882984e-4",
		"-2.495184669674631806622008769674827575088e-3",
		"-2.141868222987209028118086708697998506716e-2",
		"-6.184031415202148901863605871197272650090e-2",
		"-1.922298704033332356899546792898156493887e-2",
	),
	den: coeffs(
		"3.820418034066293517479619763498400162314e-17",
		"4.340702810799239909648911373329149354911e-14",
		"1.914985356383416140706179933075303538524e-11",
		"4.262333682610888819476498617261895474330e-9",
		"5.213481314722233980346462747902942182792e-7",
		"3.585741697694069399299005316809954590558e-5",
		"1.366513429642842006385029778105539457546e-3",
		"2.745282599850704662726337474371355160594e-2",
		"2.637644521611867647651200098449903330074e-1",
		"1.006953426110765984590782655598680488746e0",
	),
	lo: 0, hi: 0.0625, peak: 8.0e-36,
}

// P1(x) = 1 + z R(z), z = 1/x^2, 0.0625 <= 1/x <= 0.125 (8 <= x <= 16).
var pFar1 = fit{
	num: coeffs(
		"2.984612480763362345647303274082071598135e-16",
		"1.923651877544126103941232173085475682334e-13",
		"4.881258879388869396043760693256024307743e-11",
		"6.368866572475045408480898921866869811889e-9",
		"4.684818344104910450523906967821090796737e-7",
		"2.005177298271593587095982211091300382796e-5",
		"4.979808067163957634120681477207147536182e-4",
		"6.946005761642579085284689047091173581127e-3",
		"5.074601112955765012750207555985299026204e-2",
		"1.698599455896180893191766195194231825379e-1",
		"1.957536905259237627737222775573623779638e-1",
		"2.991314703282528370270179989044994319374e-2",
	),
	den: coeffs(
		"2.546869316918069202079580939942463010937e-15",
		"1.644650111942455804019788382157745229955e-12",
		"4.185430770291694079925607420808011147173e-10",
		"5.485331966975218025368698195861074143153e-8",
		"4.062884421686912042335466327098932678905e-6",
		"1.758139661060905948870523641319556816772e-4",
		"4.445143889306356207566032244985607493096e-3",
		"6.391901016293512632765621532571159071158e-2",
		"4.933040207519900471177016015718145795434e-1",
		"1.839144086168947712971630337250761842976e0",
		"2.715120873995490920415616716916149586579e0",
	),
	lo: 0.0625, hi: 0.125, peak: 1.9e-36,
}

// Q1(x) = (0.375 + z R(z))/x, z = 1/x^2, 0.0625 <= 1/x <= 0.125 (8 <= x <= 16).
var qFar1 = fit{
	num: coeffs(
		"-2.028630366670228670781362543615221542291e-17",
		"-1.519634620380959966438130374006858864624e-14",
		"-4.540596528116104986388796594639405114524e-12",
		"-7.085151756671466559280490913558388648274e-10",
		"-6.351062671323970823761883833531546885452e-8",
		"-3.390817171111032905297982523519503522491e-6",
		"-1.082340897018886970282138836861233213972e-4",
		"-2.020120801187226444822977006648252379508e-3",
		"-2.093169910981725694937457070649605557555e-2",
		"-1.092176538874275712359269481414448063393e-1",
		"-2.374790947854765809203590474789108718733e-1",
		"-1.365364204556573800719985118029601401323e-1",
	),
	den: coeffs(
		"1.978397614733632533581207058069628242280e-16",
		"1.487361156806202736877009608336766720560e-13",
		"4.468041406888412086042576067133365913456e-11",
		"7.027822074821007443672290507210594648877e-9",
		"6.375740580686101224127290062867976007374e-7",
		"3.466887658320002225888644977076410421940e-5",
		"1.138625640905289601186353909213719596986e-3",
		"2.224470799470414663443449818235008486439e-2",
		"2.487052928527244907490589787691478482358e-1",
		"1.483927406564349124649083853892380899217e0",
		"4.182773513276056975777258788903489507705e0",
		"4.419665392573449746043880892524360870944e0",
	),
	lo: 0.0625, hi: 0.125, peak: 1.9e-36,
}

// P1(x) = 1 + z R(z), z = 1/x^2, 0.125 <= 1/x <= 0.1875 (16/3 <= x <= 8).
var pFar2 = fit{
	num: coeffs(
		"2.837678373978003452653763806968237227234e-12",
		"9.726641165590364928442128579282742354806e-10",
		"1.284408003604131382028112171490633956539e-7",
		"8.524624695868291291250573339272194285008e-6",
		"3.111516908953172249853673787748841282846e-4",
		"6.423175156126364104172801983096596409176e-3",
		"7.430220589989104581004416356260692450652e-2",
		"4.608315409833682489016656279567605536619e-1",
		"1.396870223510964882676225042258855977512e0",
		"1.718500293904122365894630460672081526236e0",
		"5.465927698800862172307352821870223855365e-1",
	),
	den: coeffs(
		"2.421485545794616609951168511612060482715e-11",
		"8.329862750896452929030058039752327232310e-9",
		"1.106137992233383429630592081375289010720e-6",
		"7.405786153760681090127497796448503306939e-5",
		"2.740364785433195322492093333127633465227e-3",
		"5.781246470403095224872243564165254652198e-2",
		"6.927711353039742469918754111511109983546e-1",
		"4.558679283460430281188304515922826156690e0",
		"1.534468499844879487013168065728837900009e1",
		"2.313927430889218597919624843161569422745e1",
		"1.194506341319498844336768473218382828637e1",
	),
	lo: 0.125, hi: 0.1875, peak: 1.3e-36,
}

// Q1(x) = (0.375 + z R(z))/x, z = 1/x^2, 0.125 <= 1/x <= 0.1875 (16/3 <= x <= 8).
var qFar2 = fit{
	num: coeffs(
		"-3.656082407740970534915918390488336879763e-13",
		"-1.344660308497244804752334556734121771023e-10",
		"-1.909765035234071738548629788698150760791e-8",
		"-1.366668038160120210269389551283666716453e-6",
		"-5.392327355984269366895210704976314135683e-5",
		"-1.206268245713024564674432357634540343884e-3",
		"-1.515456784370354374066417703736088291287e-2",
		"-1.022454301137286306933217746545237098518e-1",
		"-3.373438906472495080504907858424251082240e-1",
		"-4.510782522110845697262323973549178453405e-1",
		"-1.549000892545288676809660828213589804884e-1",
	),
	den: coeffs(
		"3.565550843359501079050699598913828460036e-12",
		"1.321016015556560621591847454285330528045e-9",
		"1.897542728662346479999969679234270605975e-7",
		"1.381720283068706710298734234287456219474e-5",
		"5.599248147286524662305325795203422873725e-4",
		"1.305442352653121436697064782499122164843e-2",
		"1.750234079626943298160445750078631894985e-1",
		"1.311420542073436520965439883806946678491e0",
		"5.162757689856842406744504211089724926650e0",
		"9.527760296384704425618556332087850581308e0",
		"6.604648207463236667912921642545100248584e0",
	),
	lo: 0.125, hi: 0.1875, peak: 1.5e-35,
}

// P1(x) = 1 + z R(z), z = 1/x^2, 0.1875 <= 1/x <= 0.25 (4 <= x <= 16/3).
var pFar3 = fit{
	num: coeffs(
		"1.846029078268368685834261260420933914621e-10",
		"3.916295939611376119377869680335444207768e-8",
		"3.122158792018920627984597530935323997312e-6",
		"1.218073444893078303994045653603392272450e-4",
		"2.536420827983485448140477159977981844883e-3",
		"2.883011322006690823959367922241169171315e-2",
		"1.755255190734902907438042414495469810830e-1",
		"5.379317079922628599870898285488723736599e-1",
		"7.284904050194300773890303361501726561938e-1",
		"3.270110346613085348094396323925000362813e-1",
		"1.804473805689725610052078464951722064757e-2",
	),
	den: coeffs(
		"1.575278146806816970152174364308980863569e-9",
		"3.361289173657099516191331123405675054321e-7",
		"2.704692281550877810424745289838790693708e-5",
		"1.070854930483999749316546199273521063543e-3",
		"2.282373093495295842598097265627962125411e-2",
		"2.692025460665354148328762368240343249830e-1",
		"1.739892942593664447220951225734811133759e0",
		"5.890727576752230385342377570386657229324e0",
		"9.517442287057841500750256954117735128153e0",
		"6.100616353935338240775363403030137736013e0",
	),
	lo: 0.1875, hi: 0.25, peak: 1.4e-36,
}

// Q1(x) = (0.375 + z R(z))/x, z = 1/x^2, 0.1875 <= 1/x <= 0.25 (4 <= x <= 16/3).
var qFar3 = fit{
	num: coeffs(
		"-4.079513568708891749424783046520200903755e-11",
		"-9.326548104106791766891812583019664893311e-9",
		"-8.016795121318423066292906123815687003356e-7",
		"-3.372350544043594415609295225664186750995e-5",
		"-7.566238665947967882207277686375417983917e-4",
		"-9.248861580055565402130441618521591282617e-3",
		"-6.033106131055851432267702948850231270338e-2",
		"-1.966908754799996793730369265431584303447e-1",
		"-2.791062741179964150755788226623462207560e-1",
		"-1.255478605849190549914610121863534191666e-1",
		"-4.320429862021265463213168186061696944062e-3",
	),
	den: coeffs(
		"3.978497042580921479003851216297330701056e-10",
		"9.203304163828145809278568906420772246666e-8",
		"8.059685467088175644915010485174545743798e-6",
		"3.490187375993956409171098277561669167446e-4",
		"8.189109654456872150100501732073810028829e-3",
		"1.072572867311023640958725265762483033769e-1",
		"7.790606862409960053675717185714576937994e-1",
		"3.016049768232011196434185423512777656328e0",
		"5.722963851442769787733717162314477949360e0",
		"4.510527838428473279647251350931380867663e0",
	),
	lo: 0.1875, hi: 0.25, peak: 1.3e-35,
}

// P1(x) = 1 + z R(z), z = 1/x^2, 0.25 <= 1/x <= 0.3125 (16/5 <= x <= 4).
var pFar4 = fit{
	num: coeffs(
		"8.240803130988044478595580300846665863782e-8",
		"1.179418958381961224222969866406483744580e-5",
		"6.179787320956386624336959112503824397755e-4",
		"1.540270833608687596420595830747166658383e-2",
		"1.983904219491512618376375619598837355076e-1",
		"1.341465722692038870390470651608301155565e0",
		"4.617865326696612898792238245990854646057e0",
		"7.435574801812346424460233180412308000587e0",
		"4.671327027414635292514599201278557680420e0",
		"7.299530852495776936690976966995187714739e-1",
	),
	den: coeffs(
		"7.032152009675729604487575753279187576521e-7",
		"1.015090352324577615777511269928856742848e-4",
		"5.394262184808448484302067955186308730620e-3",
		"1.375291438480256110455809354836988584325e-1",
		"1.836247144461106304788160919310404376670e0",
		"1.314378564254376655001094503090935880349e1",
		"4.957184590465712006934452500894672343488e1",
		"9.287394244300647738855415178790263465398e1",
		"7.652563275535900609085229286020552768399e1",
		"2.147042473003074533150718117770093209096e1",
	),
	lo: 0.25, hi: 0.3125, peak: 3.0e-36,
}

// Q1(x) = (0.375 + z R(z))/x, z = 1/x^2, 0.25 <= 1/x <= 0.3125 (16/5 <= x <= 4).
var qFar4 = fit{
	num: coeffs(
		"-1.087480809271383885936921889040388133627e-8",
		"-1.690067828697463740906962973479310170932e-6",
		"-9.608064416995105532790745641974762550982e-5",
		"-2.594198839156517191858208513873961837410e-3",
		"-3.610954144421543968160459863048062977822e-2",
		"-2.629866798251843212210482269563961685666e-1",
		"-9.709186825881775885917984975685752956660e-1",
		"-1.667521829918185121727268867619982417317e0",
		"-1.109255082925540057138766105229900943501e0",
		"-1.812932453006641348145049323713469043328e-1",
	),
	den: coeffs(
		"1.060552717496912381388763753841473407026e-7",
		"1.676928002024920520786883649102388708024e-5",
		"9.803481712245420839301400601140812255737e-4",
		"2.765559874262309494758505158089249012930e-2",
		"4.117921827792571791298862613287549140706e-1",
		"3.323769515244751267093378361930279161413e0",
		"1.436602494405814164724810151689705353670e1",
		"3.163087869617098638064881410646782408297e1",
		"3.198181264977021649489103980298349589419e1",
		"1.203649258862068431199471076202897823272e1",
	),
	lo: 0.25, hi: 0.3125, peak: 2.1e-35,
}

// P1(x) = 1 + z R(z), z = 1/x^2, 0.3125 <= 1/x <= 0.375 (8/3 <= x <= 16/5).
var pFar5 = fit{
	num: coeffs(
		"4.599033469240421554219816935160627085991e-7",
		"4.665724440345003914596647144630893997284e-5",
		"1.684348845667764271596142716944374892756e-3",
		"2.802446446884455707845985913454440176223e-2",
		"2.321937586453963310008279956042545173930e-1",
		"9.640277413988055668692438709376437553804e-1",
		"1.911021064710270904508663334033003246028e0",
		"1.600811610164341450262992138893970224971e0",
		"4.266299218652587901171386591543457861138e-1",
		"1.316470424456061252962568223251247207325e-2",
	),
	den: coeffs(
		"3.924508608545520758883457108453520099610e-6",
		"4.029707889408829273226495756222078039823e-4",
		"1.484629715787703260797886463307469600219e-2",
		"2.553136379967180865331706538897231588685e-1",
		"2.229457223891676394409880026887106228740e0",
		"1.005708903856384091956550845198392117318e1",
		"2.277082659664386953166629360352385889558e1",
		"2.384726835193630788249826630376533988245e1",
		"9.700989749041320895890113781610939632410e0",
	),
	lo: 0.3125, hi: 0.375, peak: 1.0e-35,
}

// Q1(x) = (0.375 + z R(z))/x, z = 1/x^2, 0.3125 <= 1/x <= 0.375 (8/3 <= x <= 16/5).
var qFar5 = fit{
	num: coeffs(
		"-1.723405393982209853244278760171643219530e-7",
		"-2.090508758514655456365709712333460087442e-5",
		"-9.140104013370974823232873472192719263019e-4",
		"-1.871349499990714843332742160292474780128e-2",
		"-1.948930738119938669637865956162512983416e-1",
		"-1.048764684978978127908439526343174139788e0",
		"-2.827714929925679500237476105843643064698e0",
		"-3.508761569156476114276988181329773987314e0",
		"-1.669332202790211090973255098624488308989e0",
		"-1.930796319299022954013840684651016077770e-1",
	),
	den: coeffs(
		"1.680730662300831976234547482334347983474e-6",
		"2.084241442440551016475972218719621841120e-4",
		"9.445316642108367479043541702688736295579e-3",
		"2.044637889456631896650179477133252184672e-1",
		"2.316091982244297350829522534435350078205e0",
		"1.412031891783015085196708811890448488865e1",
		"4.583830154673223384837091077279595496149e1",
		"7.549520609270909439885998474045974122261e1",
		"5.697605832808113367197494052388203310638e1",
		"1.601496240876192444526383314589371686234e1",
	),
	lo: 0.3125, hi: 0.375, peak: 1.6e-36,
}

// P1(x) = 1 + z R(z), z = 1/x^2, 0.375 <= 1/x <= 0.4375 (16/7 <= x <= 8/3).
var pFar6 = fit{
	num: coeffs(
		"3.916766777108274628543759603786857387402e-6",
		"3.212176636756546217390661984304645137013e-4",
		"9.255768488524816445220126081207248947118e-3",
		"1.214853146369078277453080641911700735354e-1",
		"7.855163309847214136198449861311404633665e-1",
		"2.520058073282978403655488662066019816540e0",
		"3.825136484837545257209234285382183711466e0",
		"2.432569427554248006229715163865569506873e0",
		"4.877934835018231178495030117729800489743e-1",
		"1.109902737860249670981355149101343427885e-2",
	),
	den: coeffs(
		"3.342307880794065640312646341190547184461e-5",
		"2.782182891138893201544978009012096558265e-3",
		"8.221304931614200702142049236141249929207e-2",
		"1.123728246291165812392918571987858010949e0",
		"7.740482453652715577233858317133423434590e0",
		"2.737624677567945952953322566311201919139e1",
		"4.837181477096062403118304137851260715475e1",
		"3.941098643468580791437772701093795299274e1",
		"1.245821247166544627558323920382547533630e1",
	),
	lo: 0.375, hi: 0.4375, peak: 1.7e-36,
}

// Q1(x) = (0.375 + z R(z))/x, z = 1/x^2, 0.375 <= 1/x <= 0.4375 (16/7 <= x <= 8/3).
var qFar6 = fit{
	num: coeffs(
		"-8.603042076329122085722385914954878953775e-7",
		"-7.701746260451647874214968882605186675720e-5",
		"-2.407932004380727587382493696877569654271e-3",
		"-3.403434217607634279028110636919987224188e-2",
		"-2.348707332185238159192422084985713102877e-1",
		"-7.957498841538254916147095255700637463207e-1",
		"-1.258469078442635106431098063707934348577e0",
		"-8.162415474676345812459353639449971369890e-1",
		"-1.581783890269379690141513949609572806898e-1",
		"-1.890595651683552228232308756569450822905e-3",
	),
	den: coeffs(
		"8.390017524798316921170710533381568175665e-6",
		"7.738148683730826286477254659973968763659e-4",
		"2.541480810958665794368759558791634341779e-2",
		"3.878879789711276799058486068562386244873e-1",
		"3.003783779325811292142957336802456109333e0",
		"1.206480374773322029883039064575464497400e1",
		"2.458414064785315978408974662900438351782e1",
		"2.367237826273668567199042088835448715228e1",
		"9.231451197519171090875569102116321676763e0",
	),
	lo: 0.375, hi: 0.4375, peak: 9.5e-36,
}

// P1(x) = 1 + z R(z), z = 1/x^2, 0.4375 <= 1/x <= 0.5 (2 <= x <= 16/7).
var pFar7 = fit{
	num: coeffs(
		"3.397930802851248553545191160608731940751e-4",
		"2.104020902735482418784312825637833698217e-2",
		"4.442291771608095963935342749477836181939e-1",
		"4.131797328716583282869183304291833754967e0",
		"1.819920169779026500146134832455189917589e1",
		"3.781779616522937565300309684282401791291e1",
		"3.459605449728864218972931220783543410347e1",
		"1.173594248397603882049066603238568316561e1",
		"9.455702270242780642835086549285560316461e-1",
	),
	den: coeffs(
		"2.899568897241432883079888249845707400614e-3",
		"1.831107138190848460767699919531132426356e-1",
		"3.999350044057883839080258832758908825165e0",
		"3.929041535867957938340569419874195303712e1",
		"1.884245613422523323068802689915538908291e2",
		"4.461469948819229734353852978424629815929e2",
		"5.004998753999796821224085972610636347903e2",
		"2.386342520092608513170837883757163414100e2",
		"3.791322528149347975999851588922424189957e1",
	),
	lo: 0.4375, hi: 0.5, peak: 1.7e-35,
}

// Q1(x) = (0.375 + z R(z))/x, z = 1/x^2, 0.4375 <= 1/x <= 0.5 (2 <= x <= 16/7).
var qFar7 = fit{
	num: coeffs(
		"-5.552507516089087822166822364590806076174e-6",
		"-4.135067659799500521040944087433752970297e-4",
		"-1.059928728869218962607068840646564457980e-2",
		"-1.212070036005832342565792241385459023801e-1",
		"-6.688350110633603958684302153362735625156e-1",
		"-1.793587878197360221340277951304429821582e0",
		"-2.225407682237197485644647380483725045326e0",
		"-1.123402135458940189438898496348239744403e0",
		"-1.679187241566347077204805190763597299805e-1",
		"-1.458550613639093752909985189067233504148e-3",
	),
	den: coeffs(
		"5.415024336507980465169023996403597916115e-5",
		"4.179246497380453022046357404266022870788e-3",
		"1.136306384261959483095442402929502368598e-1",
		"1.422640343719842213484515445393284072830e0",
		"8.968786703393158374728850922289204805764e0",
		"2.914542473339246127533384118781216495934e1",
		"4.781605421020380669870197378210457054685e1",
		"3.693865837171883152382820584714795072937e1",
		"1.153220502744204904763115556224395893076e1",
	),
	lo: 0.4375, hi: 0.5, peak: 1.4e-36,
}
