// s-expression reader and evaluator for a small, fixed scheme vocabulary
//
// a single expression is read, reduced against the built-in forms and
// rendered back to canonical text:
//
//   Run("(+ 1 2 3)")             => "6"
//   Run("(cons 1 2)")            => "(1 . 2)"
//   Run("(quote (+ 1 2))")       => "(+ 1 2)"
//   Run("(list-ref (list 10 20 30) 1)") => "20"
//
// there are no variables, no user procedures and no state between calls.
//
// built-in forms:
//   + - * / max min          integer arithmetic (left fold)
//   >= > <= < =              chained integer comparison
//   number? boolean? pair? null? list?
//   abs not and or quote
//   cons car cdr list list-ref list-tail
//
// BNF:
//  <datum>         :: <atom> | <list> | <quoted> ;
//
//  <quoted>        :: "'" <datum> ;
//
//  <list>          :: "(" <datum>* ")"
//                   | "(" <datum>+ "." <datum> ")" ;
//
//  <atom>          :: <integer> | <boolean> | <symbol> ;
//
//  <integer>       :: ( "+" | "-" )? <digit>+ ;
//  <digit>         :: "0" | ... | "9" ;
//
//  <boolean>       :: "#t" | "#f" ;
//
//  <symbol>        :: <symbol-start> <symbol-rest>* ;
//  <symbol-start>  :: <alpha> | <marker> ;
//  <symbol-rest>   :: <alpha> | <digit> | <marker> | "?" | "!" ;
//  <marker>        :: "<" | "=" | ">" | "*" | "/" | "#" | "+" | "-" ;
//  <alpha>         :: "A" | ... | "Z" | "a" | ... | "z" ;
//
//  <whitespace>    :: " " | "\t" | "\n" | "\r" | "\v" | "\f" ;
//
// a sign directly followed by a digit always starts an integer, so "-5" is a
// number and "- 5" is the symbol "-" followed by 5.

package scheme
