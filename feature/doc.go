/*
Package feature compiles the digit-grouping automaton: a declarative
contextual-substitution program that a shaping engine executes over digit
runs of unbounded length using only local context.

The executing engine has no counters and no run-length information, so the
classification is built from three cooperating stages:

 1. A boundary stage marks any unclassified digit followed by three more
    unclassified digits as the boundary class nd0. Three glyphs of lookahead
    are all that is needed: runs shorter than four digits never match and
    stay in their base form.
 2. A propagation stage marks any unclassified digit preceded by an nd0 as
    nd0 as well, collapsing arbitrarily long tails into the boundary class.
 3. A reverse relabeling stage walks right to left and reassigns each nd0
    preceding another classified digit to the next class in the cycle
    0, 1, 2, 3, 4, 5, 6, then back to 1, so the 3-periodic shift pattern
    repeats for runs of any length.

Digits after a decimal point are handled first, either by a forward cycle
anchored at the point itself (2,1,6,5,4,3,...) so the fractional part groups
away from the point, or, when decimal grouping is off, by an ignore rule at
the point plus a self-substitution that stops the integer rules from bleeding
into the fraction.

Every rule's input term is the class of unclassified digits, so a classified
glyph can never be reclassified (outside the intentional reverse pass): the
program is idempotent by construction.

Compile builds the program, Render serializes it to feature-file syntax for
the external shaping-table compiler, Apply executes it in-process for
validation, and Classify computes the same assignment by direct index
arithmetic.
*/
package feature
